// Package lingua implements lingo.Detector using the lingua-go statistical
// language detector.
package lingua

import (
	"strings"

	"github.com/fwojciec/lingo"
	"github.com/pemistahl/lingua-go"
)

// Interface compliance check.
var _ lingo.Detector = (*Detector)(nil)

// supportedLanguages mirrors the prompt builder's language table. Restricting
// the detector to this set improves accuracy on short inputs and keeps it
// from reporting a language the prompts cannot name.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Dutch,
	lingua.Polish,
	lingua.Turkish,
	lingua.Swedish,
	lingua.Danish,
	lingua.Finnish,
	lingua.Czech,
	lingua.Ukrainian,
	lingua.Greek,
	lingua.Vietnamese,
}

// Detector detects the language of a text, reporting lowercase ISO 639-1
// codes. Inconclusive input falls back to "en". Safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// New creates a Detector. Language models load lazily on first use, so
// construction is cheap; the first Detect call pays the loading cost.
func New() *Detector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(supportedLanguages...).
		Build()
	return &Detector{detector: d}
}

// Detect reports the most likely language of text as a lowercase ISO 639-1
// code. Empty or undecidable text reports "en".
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return "en"
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "en"
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
