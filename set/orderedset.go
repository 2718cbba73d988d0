package set

import (
	"github.com/denismitr/dll"
)

// OrderedSet keeps items in insertion order
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

var _ Set[int] = (*OrderedSet[int])(nil)

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	s.ForEachUntil(func(item T) bool {
		items = append(items, item)
		return false
	})
	return items
}

// ForEachUntil visits items in insertion order
func (s *OrderedSet[T]) ForEachUntil(fn func(item T) (stop bool)) {
	curr := s.list.Head()
	for curr != nil {
		if fn(curr.Value()) {
			return
		}
		curr = curr.Next()
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	sourceSet.ForEachUntil(func(item T) bool {
		if s.Insert(item) {
			modified = true
		}
		return false
	})

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}
