package textscan

import "testing"

func TestStripPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greeting", "Hi, there!", "Hi there"},
		{"empty", "", ""},
		{"punctuation only", "?!.,;:", ""},
		{"no punctuation fast path", "nothing to do here", "nothing to do here"},
		{"interleaved", "a.b,c;d", "abcd"},
		{"backslash and quotes", `he said \"hi\"`, "he said hi"},
		{"unicode punctuation kept", "«quoted» — dash", "«quoted» — dash"},
		{"underscore removed", "snake_case", "snakecase"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripPunctuation(tc.input); got != tc.want {
				t.Errorf("StripPunctuation(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"panama", "A man, a plan, a canal: Panama", true},
		{"empty", "", true},
		{"one rune", "é", true},
		{"punctuation only", "!?!", true},
		{"plain word", "level", true},
		{"not palindrome", "levels", false},
		{"spaces ignored", "nurses run", true},
		{"tab not ignored", "ab\tba", false},
		{"unicode mirrored", "aéa", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPalindrome(tc.input); got != tc.want {
				t.Errorf("IsPalindrome(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestAppendCleanedReusesBuffer(t *testing.T) {
	t.Parallel()

	buf := make([]rune, 0, 32)
	buf = AppendCleaned(buf, "Ab, c")
	if got := string(buf); got != "abc" {
		t.Fatalf("AppendCleaned = %q, want %q", got, "abc")
	}

	buf = AppendCleaned(buf[:0], "X Y")
	if got := string(buf); got != "xy" {
		t.Fatalf("AppendCleaned after reuse = %q, want %q", got, "xy")
	}
}
