package seq

import "github.com/denismitr/wrp/utils"

type Char interface {
	~byte | ~rune
}

// RemoveMultiWhitespace collapses every run of consecutive whitespace
// characters in s into its first character and returns the new logical end.
// Items at and after the returned index are left in an unspecified state,
// truncating them is up to the caller:
//
//	b := []byte("a  b   c")
//	b = b[:seq.RemoveMultiWhitespace(b)] // "a b c"
func RemoveMultiWhitespace[S ~[]E, E Char](s S) int {
	if len(s) == 0 {
		return 0
	}

	end := 0
	for i := 1; i < len(s); i++ {
		if utils.IsSpace(s[end]) && utils.IsSpace(s[i]) {
			continue
		}
		end++
		if end != i {
			s[end] = s[i]
		}
	}

	return end + 1
}

// CollapseWhitespace returns a copy of str where every run of whitespace
// is reduced to its first character.
func CollapseWhitespace(str string) string {
	b := []byte(str)
	return string(b[:RemoveMultiWhitespace(b)])
}
