// Package seq holds container agnostic sequence algorithms.
//
// Every algorithm comes in a slice form and, where it makes sense, in a form
// that accepts the smallest capability interface it needs, so custom
// containers such as queue.Ring or set.OrderedSet can be used as well.
// None of the functions are safe for concurrent mutation of the same sequence.
package seq

type (
	// Predicate reports whether an item satisfies a condition
	Predicate[T any] func(item T) bool

	// Traversable is a sequence that can be walked front to back.
	// Iteration stops as soon as fn returns true.
	Traversable[T any] interface {
		ForEachUntil(fn func(item T) (stop bool))
	}

	// RandomAccess is a dynamic sequence with indexed mutation
	// that can shrink from the back.
	RandomAccess[T any] interface {
		Len() int
		At(i int) T
		Set(i int, v T)
		PopBack() (T, bool)
	}

	// SortedInserter is an indexable sequence that accepts
	// insertion at an arbitrary position.
	SortedInserter[T any] interface {
		Len() int
		At(i int) T
		InsertAt(i int, v T)
	}
)
