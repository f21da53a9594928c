// textutils.go
// Package textutils is a small library of independent pure utility functions
// for text normalization and elementary numeric computation: case-style
// conversion, punctuation stripping, palindrome testing, Fibonacci numbers,
// factorials and primality testing.
//
// Character classification is pinned to ASCII so behavior never drifts with
// locale or Unicode version: only A-Z/a-z participate in case mapping, only
// ASCII letters and digits are alphanumeric, and the punctuation set is the
// fixed ASCII one. Runes outside ASCII pass through unchanged.
//
// Every function is pure and stateless, and all are safe for concurrent use.
// The configurable API with logging, pooling and a reader-based palindrome
// check lives in the pkg/ packages.
package textutils

import (
	"github.com/baditaflorin/go_text_utils/internal/core/caseconv"
	"github.com/baditaflorin/go_text_utils/internal/core/textscan"
)

// ToSnakeCase converts text to snake_case.
//
// Spaces and hyphens become underscores, an underscore is inserted before an
// uppercase letter that follows a non-separator run, uppercase letters are
// lowercased, and leading/trailing underscores are stripped:
//
//	ToSnakeCase("HelloWorld")  == "hello_world"
//	ToSnakeCase("hello world") == "hello_world"
func ToSnakeCase(text string) string {
	return caseconv.Snake(text)
}

// ToCamelCase converts text to camelCase.
//
// The input splits on every non-alphanumeric rune; the first word is
// lowercased and every later word is capitalized:
//
//	ToCamelCase("hello world") == "helloWorld"
//	ToCamelCase("Hello_world") == "helloWorld"
//
// Input with no alphanumeric characters converts to the empty string.
func ToCamelCase(text string) string {
	return caseconv.Camel(text)
}

// RemovePunctuation returns text with every character in the fixed ASCII
// punctuation set removed. Whitespace, letters, digits and non-ASCII runes
// (including non-ASCII punctuation) pass through unchanged and in order.
func RemovePunctuation(text string) string {
	return textscan.StripPunctuation(text)
}

// IsPalindrome reports whether text reads the same forwards and backwards,
// ignoring punctuation, spaces and ASCII letter case:
//
//	IsPalindrome("A man, a plan, a canal: Panama") == true
//
// Empty input and input that cleans to a single character are palindromes.
func IsPalindrome(text string) bool {
	return textscan.IsPalindrome(text)
}
