package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer
}

func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

// DivCeil divides value by divisor, rounding up. Both must be non-negative and divisor must not be 0.
func DivCeil(value, divisor int) int {
	return (value + divisor - 1) / divisor
}

// MulOverflows reports whether a*b cannot be represented as a non-negative int. Both operands must be
// non-negative.
func MulOverflows(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	product := a * b
	return product/b != a || product < 0
}
