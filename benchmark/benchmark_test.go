package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	textutils "github.com/baditaflorin/go_text_utils"
	"github.com/baditaflorin/go_text_utils/pkg/caseconv"
	"github.com/baditaflorin/go_text_utils/pkg/palindrome"
)

// generateText creates a text of roughly the specified size by repeating a
// mixed-case, punctuated sample.
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The Quick-Brown Fox, jumps over the LazyDog! Pack my box with five-dozen liquor jugs. "
	var sb strings.Builder
	sb.Grow(size + len(sample))

	for sb.Len() < size {
		sb.WriteString(sample)
	}
	return sb.String()[:size]
}

var sizes = []int{64, 1024, 16 * 1024}

func BenchmarkToSnakeCase(b *testing.B) {
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = textutils.ToSnakeCase(text)
			}
		})
	}
}

func BenchmarkToCamelCase(b *testing.B) {
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = textutils.ToCamelCase(text)
			}
		})
	}
}

func BenchmarkRemovePunctuation(b *testing.B) {
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = textutils.RemovePunctuation(text)
			}
		})
	}
}

func BenchmarkIsPalindrome(b *testing.B) {
	for _, size := range sizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = textutils.IsPalindrome(text)
			}
		})
	}
}

// BenchmarkConverterSnake measures the pooled converter against the
// allocating facade on the same input.
func BenchmarkConverterSnake(b *testing.B) {
	c, err := caseconv.New()
	if err != nil {
		b.Fatal(err)
	}
	text := generateText(1024)

	b.ResetTimer()
	b.SetBytes(1024)
	for i := 0; i < b.N; i++ {
		_ = c.Snake(text)
	}
}

func BenchmarkCheckReader(b *testing.B) {
	c, err := palindrome.New()
	if err != nil {
		b.Fatal(err)
	}
	text := generateText(16 * 1024)
	ctx := context.Background()

	b.ResetTimer()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		if _, err := c.CheckReader(ctx, strings.NewReader(text)); err != nil {
			b.Fatal(err)
		}
	}
}
