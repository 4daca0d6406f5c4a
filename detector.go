package lingo

// Detector identifies the language of a piece of text. Implementations
// return a lowercase ISO 639-1 code and fall back to a sensible default
// when detection is inconclusive; Detect never fails.
type Detector interface {
	Detect(text string) string
}
