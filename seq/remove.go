package seq

import "github.com/denismitr/wrp/utils"

// QuickRemoveAt removes the item at idx by moving the last item into its slot
// and shrinking the slice by one. The relative order of the remaining items
// is not preserved. An out of range idx leaves s untouched.
func QuickRemoveAt[S ~[]T, T any](s S, idx int) S {
	if idx < 0 || idx >= len(s) {
		return s
	}

	last := len(s) - 1
	s[idx] = s[last]
	s[last] = utils.GetZero[T]()
	return s[:last]
}

// QuickRemoveAtIn is QuickRemoveAt for any random access container
func QuickRemoveAtIn[T any](c RandomAccess[T], idx int) {
	if idx < 0 || idx >= c.Len() {
		return
	}

	last, ok := c.PopBack()
	if !ok {
		return
	}

	// the popped item was the one to remove
	if idx == c.Len() {
		return
	}

	c.Set(idx, last)
}
