package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/workflow"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the lingo TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	translator Translator
	corrector  Corrector
	state      *workflow.State
	config     lingo.Config
	styles     Styles

	mode     Mode
	running  bool
	lastText string
	stateCh  <-chan struct{}
	ready    bool
}

// New creates a TUI Model over the given workflows and shared state. stateCh
// is the channel side of a Notifier wired into the state's WithOnChange hook;
// it may be nil, in which case the view only repaints on key and done
// messages.
func New(tr Translator, co Corrector, st *workflow.State, cfg lingo.Config, theme lingo.Theme, stateCh <-chan struct{}) Model {
	ti := textinput.New()
	ti.Placeholder = "Type text to translate..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:      ti,
		translator: tr,
		corrector:  co,
		state:      st,
		config:     cfg,
		styles:     NewStyles(theme),
		stateCh:    stateCh,
	}
}

// Running returns whether an operation is currently in flight.
func (m Model) Running() bool { return m.running }

// ActiveMode returns the current input mode.
func (m Model) ActiveMode() Mode { return m.mode }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenState())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StateChangedMsg:
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		return m, m.listenState()

	case OpDoneMsg:
		m.running = false
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		cmd := m.Input.Focus()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Pass remaining messages to sub-components.
	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.renderContent())
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		m.Viewport.SetContent(m.renderContent())
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			m.cancelActive()
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submit(text, false)

	case tea.KeyTab:
		if !m.running {
			if m.mode == ModeTranslate {
				m.mode = ModeCorrect
				m.Input.Placeholder = "Type text to correct..."
			} else {
				m.mode = ModeTranslate
				m.Input.Placeholder = "Type text to translate..."
			}
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil

	case tea.KeyCtrlL:
		if !m.running && m.mode == ModeCorrect {
			m.state.SetLevel(nextLevel(m.state.Level()))
		}
		return m, nil

	case tea.KeyCtrlE:
		if !m.running && m.lastText != "" {
			return m.submit(m.lastText, true)
		}
		return m, nil
	}

	// When idle, pass keys to both the input (for typing) and the viewport
	// (for scrolling). Only forward non-character keys to the viewport to
	// avoid conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submit(text string, skipCache bool) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.lastText = text
	m.running = true
	m.Input.Blur()

	return m, startOp(m.mode, m.translator, m.corrector, text, skipCache)
}

func (m Model) cancelActive() {
	if m.mode == ModeCorrect {
		m.corrector.Cancel()
		return
	}
	m.translator.Cancel()
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	if width < 1 {
		width = 80
	}

	var b strings.Builder
	if out := m.state.Output(); out != "" {
		b.WriteString(m.styles.Output.Width(width).Render(out))
	}

	if m.mode != ModeCorrect {
		return b.String()
	}

	if m.state.Extracting() {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.styles.Muted.Render("analyzing changes…"))
		return b.String()
	}

	if changes := m.state.Changes(); len(changes) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.styles.Accent.Render("Changes:"))
		for _, ch := range changes {
			b.WriteString("\n")
			line := fmt.Sprintf("%s → %s  (%s)", ch.From, ch.To, ch.Reason)
			b.WriteString(m.styles.Change.Width(width).Render(line))
		}
	}
	return b.String()
}

// statusLine renders one line of context below the viewport. The text is
// truncated to the window width before styling so ANSI escape sequences do
// not distort the width calculation.
func (m Model) statusLine() string {
	width := m.Viewport.Width
	if width < 1 {
		width = 80
	}

	if msg := m.state.ErrorMessage(); msg != "" {
		return m.styles.Error.Render(runewidth.Truncate("Error: "+msg, width, "…"))
	}
	if m.running {
		verb := "Translating..."
		if m.mode == ModeCorrect {
			verb = "Correcting..."
		}
		return m.styles.Busy.Render(runewidth.Truncate(verb, width, "…"))
	}

	var scope, model string
	if m.mode == ModeCorrect {
		scope = string(m.state.Level())
		model = m.config.CorrectionModel()
	} else {
		scope = m.state.SourceLang() + "→" + m.state.TargetLang()
		model = m.config.TranslationModel()
	}
	count := uniseg.GraphemeClusterCount(m.Input.Value())

	line := fmt.Sprintf("%s · %s · %s · %d chars · Enter to run, Tab to switch mode, Ctrl+C to quit",
		m.mode, model, scope, count)
	return m.styles.Muted.Render(runewidth.Truncate(line, width, "…"))
}

// nextLevel cycles fix → improve → rewrite → fix.
func nextLevel(l lingo.Level) lingo.Level {
	switch l {
	case lingo.LevelFix:
		return lingo.LevelImprove
	case lingo.LevelImprove:
		return lingo.LevelRewrite
	default:
		return lingo.LevelFix
	}
}

// startOp runs one workflow call off the UI goroutine. Cancellation goes
// through the workflow's own Cancel, not this context, so the operation's
// lifetime is owned by the workflow layer.
func startOp(mode Mode, tr Translator, co Corrector, text string, skipCache bool) tea.Cmd {
	return func() tea.Msg {
		var opts []workflow.Option
		if skipCache {
			opts = append(opts, workflow.WithSkipCache())
		}
		var result string
		var err error
		if mode == ModeCorrect {
			result, err = co.Correct(context.Background(), text, opts...)
		} else {
			result, err = tr.Translate(context.Background(), text, opts...)
		}
		return OpDoneMsg{Result: result, Err: err}
	}
}

// listenState waits for the next state-change notification.
func (m Model) listenState() tea.Cmd {
	if m.stateCh == nil {
		return nil
	}
	ch := m.stateCh
	return func() tea.Msg {
		<-ch
		return StateChangedMsg{}
	}
}
