package seq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// InsertSorted inserts item into an ascending sorted slice at its lower bound,
// so that it precedes any equal items already present.
// If s is not sorted the position of item is unspecified.
func InsertSorted[S ~[]T, T constraints.Ordered](s S, item T) S {
	pos, _ := slices.BinarySearch([]T(s), item)
	return slices.Insert(s, pos, item)
}

// InsertSortedFunc is InsertSorted for a slice sorted by less
func InsertSortedFunc[S ~[]T, T any](s S, item T, less func(a, b T) bool) S {
	pos, _ := slices.BinarySearchFunc([]T(s), item, func(el, target T) int {
		switch {
		case less(el, target):
			return -1
		case less(target, el):
			return 1
		default:
			return 0
		}
	})
	return slices.Insert(s, pos, item)
}

// InsertSortedIn is InsertSorted for any indexable container
func InsertSortedIn[T constraints.Ordered](c SortedInserter[T], item T) {
	c.InsertAt(lowerBound(c, item), item)
}

func lowerBound[T constraints.Ordered](c SortedInserter[T], item T) int {
	lo, hi := 0, c.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if c.At(mid) < item {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
