// Package bubbletea provides the Bubble Tea terminal UI for lingo.
//
// The UI has two modes, Translate and Correct, toggled with Tab. Enter
// submits the input line to the active workflow; output streams into the
// viewport as the shared state changes. Ctrl+C cancels a running operation
// and quits when idle.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lingo/workflow"
)

// Mode selects which workflow Enter submits to.
type Mode int

const (
	ModeTranslate Mode = iota
	ModeCorrect
)

// String returns the mode name for the status line.
func (m Mode) String() string {
	if m == ModeCorrect {
		return "Correct"
	}
	return "Translate"
}

// Translator runs the translation workflow.
type Translator interface {
	Translate(ctx context.Context, text string, opts ...workflow.Option) (string, error)
	Cancel()
}

// Corrector runs the correction workflow.
type Corrector interface {
	Correct(ctx context.Context, text string, opts ...workflow.Option) (string, error)
	Cancel()
}

// Notifier returns a state-change hook for workflow.WithOnChange and the
// channel it feeds. The hook performs a non-blocking send: the channel is a
// level trigger, not an event queue, so a burst of writes collapses into one
// repaint.
func Notifier() (func(), <-chan struct{}) {
	ch := make(chan struct{}, 1)
	hook := func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return hook, ch
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown — when cancelled,
// the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StateChangedMsg signals that the shared workflow state was mutated and the
// view needs a repaint.
type StateChangedMsg struct{}

// OpDoneMsg signals that a submitted operation has returned.
type OpDoneMsg struct {
	Result string
	Err    error
}
