// Package sequence provides the configured numeric API: Fibonacci numbers,
// factorials and primality testing with structured logging on failures.
package sequence

import (
	"github.com/baditaflorin/go_text_utils/internal/adapters/logger"
	"github.com/baditaflorin/go_text_utils/internal/core/intseq"
	"github.com/baditaflorin/go_text_utils/internal/ports"
	"github.com/baditaflorin/l"
)

// ErrNegativeInput is returned by Fibonacci and Factorial when n < 0.
var ErrNegativeInput = intseq.ErrNegativeInput

// Sequence computes integer sequence and number theory values.
type Sequence struct {
	logger ports.Logger
}

// SequenceOption defines a functional option for configuring Sequence.
type SequenceOption func(*sequenceConfig)

type sequenceConfig struct {
	Logger ports.Logger
}

// WithLogger sets a custom logger for the sequence computations.
func WithLogger(l l.Logger) SequenceOption {
	return func(cfg *sequenceConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// New creates a new Sequence instance.
func New(opts ...SequenceOption) (*Sequence, error) {
	config := &sequenceConfig{}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &Sequence{logger: config.Logger}, nil
}

// Fibonacci returns the nth Fibonacci number.
// Returns ErrNegativeInput for negative n.
func (s *Sequence) Fibonacci(n int) (int, error) {
	result, err := intseq.Fibonacci(n)
	if err != nil {
		s.logger.Error("Fibonacci rejected input", "n", n, "error", err)
		return 0, err
	}
	return result, nil
}

// Factorial returns n!. Returns ErrNegativeInput for negative n.
// Results wrap on overflow per Go's integer semantics.
func (s *Sequence) Factorial(n int) (int, error) {
	result, err := intseq.Factorial(n)
	if err != nil {
		s.logger.Error("Factorial rejected input", "n", n, "error", err)
		return 0, err
	}
	return result, nil
}

// IsPrime reports whether n is prime.
func (s *Sequence) IsPrime(n int) bool {
	return intseq.IsPrime(n)
}

// PrimesUpTo returns all primes up to and including n.
func (s *Sequence) PrimesUpTo(n int) []int {
	return intseq.PrimesUpTo(n)
}
