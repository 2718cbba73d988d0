package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/wrp/seq"
)

func TestRemoveMultiWhitespace(t *testing.T) {
	t.Run("runs of spaces between words", func(t *testing.T) {
		b := []byte("a  b   c")
		end := seq.RemoveMultiWhitespace(b)
		assert.Equal(t, 5, end)
		assert.Equal(t, "a b c", string(b[:end]))
	})

	t.Run("only the first character of a mixed run is kept", func(t *testing.T) {
		b := []byte("foo\t \n bar")
		end := seq.RemoveMultiWhitespace(b)
		assert.Equal(t, "foo\tbar", string(b[:end]))
	})

	t.Run("leading and trailing runs", func(t *testing.T) {
		b := []byte("   foo   ")
		end := seq.RemoveMultiWhitespace(b)
		assert.Equal(t, " foo ", string(b[:end]))
	})

	t.Run("nothing to collapse", func(t *testing.T) {
		b := []byte("a b c")
		assert.Equal(t, len(b), seq.RemoveMultiWhitespace(b))
		assert.Equal(t, "a b c", string(b))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0, seq.RemoveMultiWhitespace([]byte{}))
		assert.Equal(t, 0, seq.RemoveMultiWhitespace([]rune(nil)))
	})

	t.Run("whitespace only", func(t *testing.T) {
		b := []byte(" \t\r\n\v\f")
		end := seq.RemoveMultiWhitespace(b)
		assert.Equal(t, " ", string(b[:end]))
	})

	t.Run("runes", func(t *testing.T) {
		r := []rune("привет \t\n  мир")
		end := seq.RemoveMultiWhitespace(r)
		assert.Equal(t, "привет мир", string(r[:end]))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", seq.CollapseWhitespace("a  b   c"))
	assert.Equal(t, "", seq.CollapseWhitespace(""))
	assert.Equal(t, "foo\nbar", seq.CollapseWhitespace("foo\n\n\nbar"))
}
