// numbers.go
// Integer sequence and number theory functions of the textutils facade.

package textutils

import "github.com/baditaflorin/go_text_utils/internal/core/intseq"

// ErrNegativeInput is returned by Fibonacci and Factorial when n < 0.
var ErrNegativeInput = intseq.ErrNegativeInput

// Fibonacci returns the nth Fibonacci number, with Fibonacci(0) = 0 and
// Fibonacci(1) = 1, computed iteratively in O(n) time and constant space.
// Returns ErrNegativeInput for negative n. Values beyond Fibonacci(92) wrap
// on 64-bit platforms.
func Fibonacci(n int) (int, error) {
	return intseq.Fibonacci(n)
}

// Factorial returns n! with Factorial(0) = 1, computed iteratively.
// Returns ErrNegativeInput for negative n. Values beyond Factorial(20) wrap
// on 64-bit platforms; callers needing exact large factorials must guard the
// input range themselves.
func Factorial(n int) (int, error) {
	return intseq.Factorial(n)
}

// IsPrime reports whether n is prime. Numbers below 2 are not prime. The
// test uses 6k±1 trial division up to √n.
func IsPrime(n int) bool {
	return intseq.IsPrime(n)
}
