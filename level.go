package lingo

import "fmt"

// Level selects how aggressively the correction task rewrites the input.
type Level string

const (
	// LevelFix corrects spelling and grammar only, with a minimal diff.
	LevelFix Level = "fix"
	// LevelImprove additionally elevates word choice and flow.
	LevelImprove Level = "improve"
	// LevelRewrite restructures the text for professional tone.
	LevelRewrite Level = "rewrite"
)

// DefaultLevel is used when a workflow has no bound level yet.
const DefaultLevel = LevelFix

// Validate checks that l is one of the known correction levels.
func (l Level) Validate() error {
	switch l {
	case LevelFix, LevelImprove, LevelRewrite:
		return nil
	}
	return fmt.Errorf("unknown correction level %q: %w", l, ErrValidation)
}
