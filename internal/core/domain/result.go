package domain

// Result holds the outcome of a text check.
type Result struct {
	// Name of the check.
	Name string
	// Match reports whether the check passed.
	Match bool
	// Length is the number of runes compared after cleaning.
	Length int
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
