package lingo

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Output int // generated output text
	Change int // change-list entries
	Error  int // error messages
	Busy   int // in-progress indicators
	Muted  int // status bar, placeholders
	Accent int // mode name, model name
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Output: 7,
		Change: 3,
		Error:  1,
		Busy:   2,
		Muted:  8,
		Accent: 5,
	}
}
