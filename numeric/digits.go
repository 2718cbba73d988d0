package numeric

import "golang.org/x/exp/constraints"

// NumberOfDigits counts decimal digits of |n|, the sign is not counted.
// Zero has one digit.
func NumberOfDigits[T constraints.Integer](n T) int {
	count := 1
	for n /= 10; n != 0; n /= 10 {
		count++
	}
	return count
}
