// numbers_test.go
package textutils

import (
	"errors"
	"testing"
)

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 55},
		{20, 6765},
		{50, 12586269025},
	}

	for _, tc := range tests {
		got, err := Fibonacci(tc.n)
		if err != nil {
			t.Errorf("Fibonacci(%d) returned error: %v", tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Fibonacci(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestFibonacciNegative(t *testing.T) {
	if _, err := Fibonacci(-1); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Fibonacci(-1) error = %v, want ErrNegativeInput", err)
	}
}

func TestFibonacciRecurrence(t *testing.T) {
	for n := 2; n <= 90; n++ {
		fn, _ := Fibonacci(n)
		fn1, _ := Fibonacci(n - 1)
		fn2, _ := Fibonacci(n - 2)
		if fn != fn1+fn2 {
			t.Fatalf("Fibonacci(%d) = %d, want Fibonacci(%d)+Fibonacci(%d) = %d",
				n, fn, n-1, n-2, fn1+fn2)
		}
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tc := range tests {
		got, err := Factorial(tc.n)
		if err != nil {
			t.Errorf("Factorial(%d) returned error: %v", tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Factorial(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestFactorialNegative(t *testing.T) {
	if _, err := Factorial(-1); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Factorial(-1) error = %v, want ErrNegativeInput", err)
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{9, false},
		{17, true},
		{25, false},
		{49, false},
		{97, true},
		{100, false},
		{7919, true},
		{7917, false},
	}

	for _, tc := range tests {
		if got := IsPrime(tc.n); got != tc.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}
