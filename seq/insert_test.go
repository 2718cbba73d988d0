package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"

	"github.com/denismitr/wrp/queue"
	"github.com/denismitr/wrp/seq"
)

func TestInsertSorted(t *testing.T) {
	t.Run("into an empty slice", func(t *testing.T) {
		assert.Equal(t, []int{5}, seq.InsertSorted([]int(nil), 5))
	})

	t.Run("front middle and back", func(t *testing.T) {
		s := []int{2, 4, 6}
		s = seq.InsertSorted(s, 1)
		s = seq.InsertSorted(s, 5)
		s = seq.InsertSorted(s, 9)
		assert.Equal(t, []int{1, 2, 4, 5, 6, 9}, s)
	})

	t.Run("strings stay sorted", func(t *testing.T) {
		s := []string{"bar", "foo"}
		s = seq.InsertSorted(s, "baz")
		assert.Equal(t, []string{"bar", "baz", "foo"}, s)
	})

	t.Run("many inserts keep the slice sorted", func(t *testing.T) {
		var s []int
		for _, v := range []int{42, 7, 19, 7, 0, -3, 100, 19, 55} {
			before := count(s, v)
			s = seq.InsertSorted(s, v)
			assert.True(t, slices.IsSorted(s))
			assert.Equal(t, before+1, count(s, v))
		}
	})
}

func TestInsertSortedFunc(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	byKey := func(a, b item) bool { return a.key < b.key }

	t.Run("new item precedes existing equals", func(t *testing.T) {
		s := []item{{1, "a"}, {2, "old"}, {2, "older"}, {3, "c"}}
		s = seq.InsertSortedFunc(s, item{2, "new"}, byKey)
		assert.Equal(t, []item{{1, "a"}, {2, "new"}, {2, "old"}, {2, "older"}, {3, "c"}}, s)
	})

	t.Run("descending order", func(t *testing.T) {
		desc := func(a, b int) bool { return a > b }
		s := []int{9, 5, 1}
		s = seq.InsertSortedFunc(s, 6, desc)
		s = seq.InsertSortedFunc(s, 0, desc)
		assert.Equal(t, []int{9, 6, 5, 1, 0}, s)
	})
}

func TestInsertSortedIn(t *testing.T) {
	t.Run("ring with room", func(t *testing.T) {
		q := queue.NewRing[int](5)
		for _, v := range []int{1, 3, 5} {
			assert.NoError(t, q.Enqueue(v))
		}

		seq.InsertSortedIn[int](q, 4)
		seq.InsertSortedIn[int](q, 0)
		assert.Equal(t, []int{0, 1, 3, 4, 5}, q.Items())
	})

	t.Run("empty ring", func(t *testing.T) {
		q := queue.NewRing[string](1)
		seq.InsertSortedIn[string](q, "foo")
		assert.Equal(t, []string{"foo"}, q.Items())
	})
}

func count[T comparable](s []T, v T) int {
	n := 0
	for i := range s {
		if s[i] == v {
			n++
		}
	}
	return n
}
