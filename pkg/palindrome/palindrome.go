// Package palindrome provides the configured palindrome checking API,
// including a reader-based variant for callers holding text in a stream.
package palindrome

import (
	"context"
	"fmt"
	"io"

	"github.com/baditaflorin/go_text_utils/internal/adapters/logger"
	"github.com/baditaflorin/go_text_utils/internal/core/domain"
	"github.com/baditaflorin/go_text_utils/internal/core/textscan"
	"github.com/baditaflorin/go_text_utils/internal/pool"
	"github.com/baditaflorin/go_text_utils/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/valyala/bytebufferpool"
)

// Checker computes whether texts are palindromes after cleaning.
type Checker struct {
	logger ports.Logger
	runes  *pool.RunePool
}

var _ ports.TextChecker = (*Checker)(nil)

// CheckerOption defines a functional option for configuring Checker.
type CheckerOption func(*checkerConfig)

type checkerConfig struct {
	Logger ports.Logger
}

// WithLogger sets a custom logger for the checker.
func WithLogger(l l.Logger) CheckerOption {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// New creates a new Checker instance.
func New(opts ...CheckerOption) (*Checker, error) {
	config := &checkerConfig{}

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

	return &Checker{
		logger: config.Logger,
		runes:  pool.NewRunePool(256),
	}, nil
}

// Check reports whether text is a palindrome after punctuation stripping,
// space removal and lowercasing. The result carries the cleaned length and
// diagnostic details.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Result{
			Name:    "palindrome",
			Match:   false,
			Details: details,
		}
	default:
	}

	buf := c.runes.Get()
	defer c.runes.Put(buf)

	cleaned := textscan.AppendCleaned(*buf, text)
	*buf = cleaned[:0]

	match := textscan.Mirrored(cleaned)

	details["cleaned_length"] = len(cleaned)

	c.logger.Debug("Checked palindrome",
		"input", text,
		"cleaned_length", len(cleaned),
		"match", match,
	)

	return domain.Result{
		Name:    "palindrome",
		Match:   match,
		Length:  len(cleaned),
		Details: details,
	}
}

// CheckReader reads r to EOF and checks the content like Check. The read
// buffer is pooled; inputs are not size-limited, so callers reading from
// untrusted sources should wrap r with io.LimitReader.
func (c *Checker) CheckReader(ctx context.Context, r io.Reader) (domain.Result, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		c.logger.Error("Failed to read input stream", "error", err)
		return domain.Result{}, fmt.Errorf("reading input: %w", err)
	}

	return c.Check(ctx, buf.String()), nil
}
