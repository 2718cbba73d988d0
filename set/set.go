// Package set provides hash and insertion ordered sets.
// Both can be searched with the seq package through ForEachUntil.
package set

import "github.com/denismitr/wrp/seq"

type Set[T comparable] interface {
	seq.Traversable[T]

	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
	InsertSet(sourceSet Set[T]) (modified bool)
	InsertSlice(sourceSlice []T) (modified bool)
}
