package seq

// Contains reports whether v is present in items.
// Items are not expected to be sorted, the scan stops at the first match.
func Contains[T comparable](items []T, v T) bool {
	for i := range items {
		if items[i] == v {
			return true
		}
	}
	return false
}

// ContainsIf reports whether at least one item satisfies pred.
func ContainsIf[T any](items []T, pred Predicate[T]) bool {
	for i := range items {
		if pred(items[i]) {
			return true
		}
	}
	return false
}

// ContainsIn is Contains for any traversable container
func ContainsIn[T comparable](c Traversable[T], v T) bool {
	return ContainsInIf(c, func(item T) bool { return item == v })
}

// ContainsInIf is ContainsIf for any traversable container
func ContainsInIf[T any](c Traversable[T], pred Predicate[T]) (found bool) {
	c.ForEachUntil(func(item T) bool {
		found = pred(item)
		return found
	})
	return found
}
