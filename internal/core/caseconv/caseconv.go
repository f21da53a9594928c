// Package caseconv implements the snake_case and camelCase conversion
// algorithms. Both are pure single-pass transformations over the input
// runes using the pinned ASCII classification from internal/core/ascii.
package caseconv

import (
	"strings"

	"github.com/baditaflorin/go_text_utils/internal/core/ascii"
)

// Snake converts text to snake_case.
//
// Spaces and hyphens become underscores, an underscore is inserted before an
// uppercase letter that follows a lowercase-run character, and uppercase
// letters are lowercased. Leading and trailing underscores are stripped from
// the result.
func Snake(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	AppendSnake(&b, text)
	return strings.Trim(b.String(), "_")
}

// AppendSnake writes the untrimmed snake_case form of text to b.
// Callers that need the final form must strip leading and trailing
// underscores from the accumulated string, as Snake does.
func AppendSnake(b *strings.Builder, text string) {
	prevLower := false
	var last rune
	hasLast := false

	for _, r := range text {
		switch {
		case r == ' ' || r == '-':
			if hasLast && last != '_' {
				b.WriteByte('_')
				last = '_'
			}
			prevLower = false
		case ascii.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			last = ascii.Lower(r)
			b.WriteRune(last)
			hasLast = true
			prevLower = false
		default:
			b.WriteRune(r)
			last = r
			hasLast = true
			prevLower = true
		}
	}
}

// Camel converts text to camelCase.
//
// The input is split into maximal runs of ASCII alphanumeric characters;
// every other rune is a separator and emits nothing. The first token is
// lowercased entirely, each later token is capitalized (first character
// uppercased, the rest lowercased), and the tokens are concatenated.
// Input with no alphanumeric runs converts to the empty string.
func Camel(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	AppendCamel(&b, text)
	return b.String()
}

// AppendCamel writes the camelCase form of text to b.
func AppendCamel(b *strings.Builder, text string) {
	token := 0
	inToken := false
	tokenStart := false

	for _, r := range text {
		if !ascii.IsAlnum(r) {
			inToken = false
			continue
		}
		if !inToken {
			inToken = true
			tokenStart = true
			token++
		}
		switch {
		case token == 1:
			b.WriteRune(ascii.Lower(r))
		case tokenStart:
			b.WriteRune(ascii.Upper(r))
		default:
			b.WriteRune(ascii.Lower(r))
		}
		tokenStart = false
	}
}
