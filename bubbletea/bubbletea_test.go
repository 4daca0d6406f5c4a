package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lingo"
	bt "github.com/fwojciec/lingo/bubbletea"
	"github.com/fwojciec/lingo/mock"
	"github.com/fwojciec/lingo/workflow"
	"github.com/stretchr/testify/require"
)

// stubTranslator implements bt.Translator with a function field, in the
// style of the mock package.
type stubTranslator struct {
	fn        func(ctx context.Context, text string, opts ...workflow.Option) (string, error)
	cancelled bool
}

func (s *stubTranslator) Translate(ctx context.Context, text string, opts ...workflow.Option) (string, error) {
	if s.fn == nil {
		return "", nil
	}
	return s.fn(ctx, text, opts...)
}

func (s *stubTranslator) Cancel() { s.cancelled = true }

// stubCorrector implements bt.Corrector.
type stubCorrector struct {
	fn        func(ctx context.Context, text string, opts ...workflow.Option) (string, error)
	cancelled bool
}

func (s *stubCorrector) Correct(ctx context.Context, text string, opts ...workflow.Option) (string, error) {
	if s.fn == nil {
		return "", nil
	}
	return s.fn(ctx, text, opts...)
}

func (s *stubCorrector) Cancel() { s.cancelled = true }

// newModel creates a model over stub workflows and a fresh state, without a
// notifier channel.
func newModel(tr bt.Translator, co bt.Corrector, st *workflow.State) bt.Model {
	cfg := &mock.Config{TranslationModelName: "aya:8b", CorrectionModelName: "llama3.2"}
	return bt.New(tr, co, st, cfg, lingo.DefaultTheme(), nil)
}

// initModel creates a model and sends a WindowSizeMsg to initialize the
// viewport.
func initModel(t *testing.T, tr bt.Translator, co bt.Corrector, st *workflow.State) bt.Model {
	t.Helper()
	m := newModel(tr, co, st)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}
