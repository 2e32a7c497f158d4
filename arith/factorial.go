package arith

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOverflow is returned by the checked operations when the exact result
// does not fit in 32 bits.
var ErrOverflow = errors.New("arith: overflow")

// MaxExactFactorial is the largest n for which n! fits in a uint32.
const MaxExactFactorial = 12

// Factorial returns n!, wrapping modulo 2^32.
//
// From 34 upwards the product carries at least 32 factors of two, so the
// wrapped result is 0 and the loop stops early.
func Factorial(n uint32) uint32 {
	result := uint32(1)
	for i := uint32(2); i <= n && result != 0; i++ {
		result *= i
	}
	return result
}

// CheckedFactorial returns n! and an error wrapping ErrOverflow when the
// result does not fit. The wrapped value is returned alongside the error.
func CheckedFactorial(n uint32) (uint32, error) {
	if n > MaxExactFactorial {
		return Factorial(n), fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
	}
	return Factorial(n), nil
}

// mul32 multiplies a and b, reporting whether the product overflowed.
func mul32(a, b uint32) (uint32, bool) {
	hi, lo := bits.Mul32(a, b)
	return lo, hi != 0
}
