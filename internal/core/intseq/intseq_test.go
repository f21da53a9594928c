package intseq

import (
	"errors"
	"testing"
)

func TestFibonacci(t *testing.T) {
	t.Parallel()

	// First values of the sequence, checked positionally.
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	for n, expected := range want {
		got, err := Fibonacci(n)
		if err != nil {
			t.Fatalf("Fibonacci(%d) returned error: %v", n, err)
		}
		if got != expected {
			t.Errorf("Fibonacci(%d) = %d, want %d", n, got, expected)
		}
	}

	if _, err := Fibonacci(-3); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Fibonacci(-3) error = %v, want ErrNegativeInput", err)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	want := []int{1, 1, 2, 6, 24, 120, 720, 5040}
	for n, expected := range want {
		got, err := Factorial(n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", n, err)
		}
		if got != expected {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, expected)
		}
	}

	if _, err := Factorial(-1); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("Factorial(-1) error = %v, want ErrNegativeInput", err)
	}
}

// naivePrime is the reference oracle: trial division by every candidate.
func naivePrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeAgainstOracle(t *testing.T) {
	t.Parallel()

	for n := -10; n <= 2000; n++ {
		if got, want := IsPrime(n), naivePrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{2, true},
		{3, true},
		{4, false},  // caught by the %2 check
		{25, false}, // caught by the i=5 probe
		{35, false}, // caught by the i+2=7 probe
		{49, false}, // caught by the i+2=7 probe
		{121, false},
		{7919, true},
	}

	for _, tc := range tests {
		if got := IsPrime(tc.n); got != tc.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPrimesUpTo(t *testing.T) {
	t.Parallel()

	got := PrimesUpTo(30)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("PrimesUpTo(30) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrimesUpTo(30) = %v, want %v", got, want)
		}
	}

	if PrimesUpTo(1) != nil {
		t.Errorf("PrimesUpTo(1) = %v, want nil", PrimesUpTo(1))
	}
}
