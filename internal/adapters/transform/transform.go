// Package transform provides ports.Transformer implementations backed by
// the pure conversion algorithms in internal/core, with builder pooling for
// callers that convert many strings.
package transform

import (
	"strings"

	"github.com/baditaflorin/go_text_utils/internal/core/caseconv"
	"github.com/baditaflorin/go_text_utils/internal/core/textscan"
	"github.com/baditaflorin/go_text_utils/internal/pool"
	"github.com/baditaflorin/go_text_utils/internal/ports"
)

// snakeTransformer converts text to snake_case using pooled builders.
type snakeTransformer struct {
	builders *pool.BuilderPool
}

// NewSnake creates a snake_case transformer.
func NewSnake() ports.Transformer {
	return &snakeTransformer{builders: pool.NewBuilderPool()}
}

func (t *snakeTransformer) Transform(text string) string {
	b := t.builders.Get()
	defer t.builders.Put(b)

	b.Grow(len(text) + 8)
	caseconv.AppendSnake(b, text)
	return strings.Trim(b.String(), "_")
}

// camelTransformer converts text to camelCase using pooled builders.
type camelTransformer struct {
	builders *pool.BuilderPool
}

// NewCamel creates a camelCase transformer.
func NewCamel() ports.Transformer {
	return &camelTransformer{builders: pool.NewBuilderPool()}
}

func (t *camelTransformer) Transform(text string) string {
	b := t.builders.Get()
	defer t.builders.Put(b)

	b.Grow(len(text))
	caseconv.AppendCamel(b, text)
	return b.String()
}

// punctTransformer strips the fixed ASCII punctuation set.
type punctTransformer struct{}

// NewPunctuationStripper creates a punctuation-stripping transformer.
func NewPunctuationStripper() ports.Transformer {
	return punctTransformer{}
}

func (punctTransformer) Transform(text string) string {
	return textscan.StripPunctuation(text)
}
