package ports

import (
	"context"

	"github.com/baditaflorin/go_text_utils/internal/core/domain"
)

// TextChecker defines the interface for computing a boolean property of a text.
type TextChecker interface {
	Check(ctx context.Context, text string) domain.Result
}
