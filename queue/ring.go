package queue

import (
	"errors"
	"fmt"
	"sync"

	"github.com/denismitr/wrp/seq"
	"github.com/denismitr/wrp/utils"
)

var (
	ErrOverflow = errors.New("queue is full")
	ErrEmpty    = errors.New("queue is empty")
)

var (
	_ seq.RandomAccess[int]   = (*Ring[int])(nil)
	_ seq.SortedInserter[int] = (*Ring[int])(nil)
	_ seq.Traversable[int]    = (*Ring[int])(nil)
)

// Ring is a bounded FIFO ring buffer that also allows indexed access
// from the oldest (index 0) to the newest item, which makes it usable
// as a double ended sequence by the seq package.
type Ring[T any] struct {
	mux   sync.RWMutex
	head  uint64
	tail  uint64
	size  uint64
	count uint64
	buf   []T
}

func NewRing[T any](size uint64) *Ring[T] {
	return &Ring[T]{
		buf:  make([]T, size),
		size: size,
	}
}

func (q *Ring[T]) Len() int {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return int(q.count)
}

func (q *Ring[T]) Cap() int {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return int(q.size)
}

func (q *Ring[T]) IsEmpty() bool {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return q.count == 0
}

func (q *Ring[T]) Enqueue(item T) error {
	q.mux.Lock()
	defer q.mux.Unlock()
	if q.count == q.size {
		return ErrOverflow
	}

	q.buf[q.head] = item
	q.head = q.next(q.head)
	q.count++

	return nil
}

func (q *Ring[T]) Peak() (T, error) {
	q.mux.RLock()
	defer q.mux.RUnlock()
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}
	return q.buf[q.tail], nil
}

func (q *Ring[T]) Dequeue() (T, error) {
	q.mux.Lock()
	defer q.mux.Unlock()
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	result := q.buf[q.tail]
	q.buf[q.tail] = utils.GetZero[T]()
	q.tail = q.next(q.tail)
	q.count--

	return result, nil
}

// At returns the i-th item counting from the oldest one.
// It panics if i is out of range, the same way indexing a slice does.
func (q *Ring[T]) At(i int) T {
	q.mux.RLock()
	defer q.mux.RUnlock()
	return q.buf[q.physical(i)]
}

// Set replaces the i-th item counting from the oldest one.
func (q *Ring[T]) Set(i int, v T) {
	q.mux.Lock()
	defer q.mux.Unlock()
	q.buf[q.physical(i)] = v
}

// PopBack removes and returns the newest item.
func (q *Ring[T]) PopBack() (T, bool) {
	q.mux.Lock()
	defer q.mux.Unlock()
	if q.count == 0 {
		return utils.GetZero[T](), false
	}

	q.head = q.prev(q.head)
	result := q.buf[q.head]
	q.buf[q.head] = utils.GetZero[T]()
	q.count--

	return result, true
}

// InsertAt puts v at position i shifting newer items towards the back.
// Unlike Enqueue it never overflows, a full ring doubles its capacity.
func (q *Ring[T]) InsertAt(i int, v T) {
	q.mux.Lock()
	defer q.mux.Unlock()
	if i < 0 || uint64(i) > q.count {
		panic(fmt.Sprintf("queue: insert index %d out of range [0:%d]", i, q.count))
	}

	if q.count == q.size {
		q.grow()
	}

	pos := q.head
	for n := q.count; n > uint64(i); n-- {
		prev := q.prev(pos)
		q.buf[pos] = q.buf[prev]
		pos = prev
	}

	q.buf[pos] = v
	q.head = q.next(q.head)
	q.count++
}

// Items returns a copy of the queued items from the oldest to the newest
func (q *Ring[T]) Items() []T {
	q.mux.RLock()
	defer q.mux.RUnlock()

	items := make([]T, 0, q.count)
	for i, pos := uint64(0), q.tail; i < q.count; i++ {
		items = append(items, q.buf[pos])
		pos = q.next(pos)
	}
	return items
}

// ForEachUntil walks a snapshot of the queue from the oldest item,
// so fn is free to modify the queue.
func (q *Ring[T]) ForEachUntil(fn func(item T) (stop bool)) {
	for _, item := range q.Items() {
		if fn(item) {
			return
		}
	}
}

func (q *Ring[T]) physical(i int) uint64 {
	if i < 0 || uint64(i) >= q.count {
		panic(fmt.Sprintf("queue: index %d out of range [0:%d]", i, q.count))
	}
	return (q.tail + uint64(i)) % q.size
}

func (q *Ring[T]) next(pos uint64) uint64 {
	if pos >= q.size-1 {
		return 0
	}
	return pos + 1
}

func (q *Ring[T]) prev(pos uint64) uint64 {
	if pos == 0 {
		return q.size - 1
	}
	return pos - 1
}

func (q *Ring[T]) grow() {
	size := q.size * 2
	if size == 0 {
		size = 1
	}

	buf := make([]T, size)
	for i, pos := uint64(0), q.tail; i < q.count; i++ {
		buf[i] = q.buf[pos]
		pos = q.next(pos)
	}

	q.buf = buf
	q.size = size
	q.tail = 0
	q.head = q.count % size
}
