package utils

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

func GetZero[T any]() T {
	var result T
	return result
}

// IsSpace reports whether c is whitespace in the C locale:
// space, \t, \n, \v, \f or \r.
func IsSpace[E ~byte | ~rune](c E) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
