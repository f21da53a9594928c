// Package textscan implements punctuation stripping and palindrome
// detection over the pinned ASCII classification.
package textscan

import (
	"strings"

	"github.com/baditaflorin/go_text_utils/internal/core/ascii"
)

// StripPunctuation returns text with every rune in the fixed ASCII
// punctuation set removed. All other runes, including whitespace and
// non-ASCII punctuation, pass through unchanged and in order.
func StripPunctuation(text string) string {
	// Fast path: most inputs carry no punctuation at all.
	i := strings.IndexFunc(text, ascii.IsPunct)
	if i < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:i])
	for _, r := range text[i:] {
		if !ascii.IsPunct(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AppendCleaned appends the palindrome-normalized form of text to dst and
// returns the extended slice: punctuation and U+0020 spaces are dropped and
// ASCII uppercase letters are lowered. dst may be nil or a reused buffer.
func AppendCleaned(dst []rune, text string) []rune {
	for _, r := range text {
		if r == ' ' || ascii.IsPunct(r) {
			continue
		}
		dst = append(dst, ascii.Lower(r))
	}
	return dst
}

// IsPalindrome reports whether text reads the same forwards and backwards
// after punctuation stripping, space removal and ASCII lowercasing.
// Empty and single-rune cleaned forms are palindromes.
func IsPalindrome(text string) bool {
	cleaned := AppendCleaned(make([]rune, 0, len(text)), text)
	return Mirrored(cleaned)
}

// Mirrored reports whether runes equals its own reverse.
func Mirrored(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
