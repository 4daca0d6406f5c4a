package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lingo"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Output lipgloss.Style
	Change lipgloss.Style
	Error  lipgloss.Style
	Busy   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t lingo.Theme) Styles {
	return Styles{
		Output: lipgloss.NewStyle().Foreground(ansiColor(t.Output)),
		Change: lipgloss.NewStyle().Foreground(ansiColor(t.Change)),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Busy:   lipgloss.NewStyle().Foreground(ansiColor(t.Busy)),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
