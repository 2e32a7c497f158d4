// Package arith implements two small fixed-width computations: the
// factorial of a 32-bit unsigned integer and the area of a rectangle with
// 32-bit unsigned sides.
//
// Both computations wrap modulo 2^32 on overflow, matching Go's unsigned
// arithmetic. CheckedFactorial and Rectangle.CheckedArea report the same
// overflow as ErrOverflow instead.
package arith
