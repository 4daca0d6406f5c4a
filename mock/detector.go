package mock

import "github.com/fwojciec/lingo"

// Interface compliance check.
var _ lingo.Detector = (*Detector)(nil)

// Detector is a test double for lingo.Detector. DetectFn is nil-safe and
// returns "en", the detector's own inconclusive fallback.
type Detector struct {
	DetectFn func(text string) string
}

// Detect delegates to DetectFn. Returns "en" when DetectFn is not set.
func (d *Detector) Detect(text string) string {
	if d.DetectFn == nil {
		return "en"
	}
	return d.DetectFn(text)
}
