// Package ascii provides the fixed ASCII character classification used by
// every text transform in this module.
//
// Classification is deliberately pinned to ASCII rather than delegating to
// the unicode package: letter case, alphanumeric membership and the
// punctuation set must not drift with locale or Unicode version. Runes
// outside the ASCII range are never upper, lower, alphanumeric or
// punctuation, and case mapping leaves them unchanged.
package ascii

// punctuation is the fixed set removed by punctuation stripping.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const (
	upperBit = 1 << iota
	lowerBit
	digitBit
	punctBit
)

// table holds one classification byte per ASCII code point.
var table [128]byte

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		table[c] |= upperBit
	}
	for c := 'a'; c <= 'z'; c++ {
		table[c] |= lowerBit
	}
	for c := '0'; c <= '9'; c++ {
		table[c] |= digitBit
	}
	for _, c := range punctuation {
		table[c] |= punctBit
	}
}

// IsUpper reports whether r is an ASCII uppercase letter.
func IsUpper(r rune) bool {
	return r < 128 && table[r]&upperBit != 0
}

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r rune) bool {
	return r < 128 && table[r]&lowerBit != 0
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r < 128 && table[r]&digitBit != 0
}

// IsAlnum reports whether r is an ASCII letter or digit.
func IsAlnum(r rune) bool {
	return r < 128 && table[r]&(upperBit|lowerBit|digitBit) != 0
}

// IsPunct reports whether r is in the fixed ASCII punctuation set.
func IsPunct(r rune) bool {
	return r < 128 && table[r]&punctBit != 0
}

// Lower returns the ASCII lowercase form of r. Non-ASCII runes and runes
// without an ASCII case mapping are returned unchanged.
func Lower(r rune) rune {
	if IsUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

// Upper returns the ASCII uppercase form of r. Non-ASCII runes and runes
// without an ASCII case mapping are returned unchanged.
func Upper(r rune) rune {
	if IsLower(r) {
		return r - ('a' - 'A')
	}
	return r
}
