// Package intseq implements the integer sequence and number theory
// primitives: Fibonacci numbers, factorials and primality testing.
//
// All computations use native int arithmetic. Results that exceed the
// machine integer range wrap per Go's integer semantics; callers needing
// exact large values must validate their inputs upstream.
package intseq

import "errors"

// ErrNegativeInput is returned by Fibonacci and Factorial when n < 0.
var ErrNegativeInput = errors.New("n must be non-negative")

// Fibonacci returns the nth Fibonacci number, with Fibonacci(0) = 0 and
// Fibonacci(1) = 1. It runs in O(n) time and constant space using two
// accumulators. Returns ErrNegativeInput for negative n.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// Factorial returns n! computed iteratively, with Factorial(0) = 1.
// Returns ErrNegativeInput for negative n. Results overflow (wrap) for
// n > 20 on 64-bit platforms.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division: after
// handling n <= 3 and divisibility by 2 and 3, only candidates of the form
// 6k-1 and 6k+1 up to √n are tested.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all primes p with 2 <= p <= n in ascending order,
// testing each candidate with IsPrime. Returns nil for n < 2.
func PrimesUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	primes := make([]int, 0, n/2)
	for p := 2; p <= n; p++ {
		if IsPrime(p) {
			primes = append(primes, p)
		}
	}
	return primes
}
