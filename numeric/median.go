package numeric

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Median sorts xs in place when it is not sorted yet and returns
// the element at len(xs)/2. For an even number of elements that is the upper
// of the two middle ones, no interpolation is done.
//
// Unlike Average there is no value for an empty slice, Median panics with
// an index out of range error in that case.
func Median[T constraints.Ordered](xs []T) T {
	if !slices.IsSorted(xs) {
		slices.Sort(xs)
	}

	return xs[len(xs)/2]
}
