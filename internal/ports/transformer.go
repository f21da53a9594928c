package ports

// Transformer defines the interface for a pure text transformation.
type Transformer interface {
	Transform(text string) string
}
