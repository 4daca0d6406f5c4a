package workflow

import (
	"sync"

	"github.com/fwojciec/lingo"
)

// State is the UI-facing state container shared between the workflows and
// their consumer. It is constructed by the composition root and injected;
// the workflows write to it during operations, the UI reads and renders.
// All accessors are safe for concurrent use.
type State struct {
	mu       sync.Mutex
	onChange func()

	input      string
	output     string
	sourceLang string
	targetLang string
	level      lingo.Level
	busy       bool
	errMsg     string
	changes    []lingo.Change
	extracting bool
}

// StateOption configures a State at construction.
type StateOption func(*State)

// WithOnChange registers a hook invoked after every mutation. The hook runs
// outside the state lock, so it may read State freely.
func WithOnChange(fn func()) StateOption {
	return func(s *State) { s.onChange = fn }
}

// NewState creates a State with auto source detection, English target and
// the default correction level.
func NewState(opts ...StateOption) *State {
	s := &State{
		sourceLang: lingo.LangAuto,
		targetLang: "en",
		level:      lingo.DefaultLevel,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *State) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Input returns the bound input text.
func (s *State) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput binds the input text.
func (s *State) SetInput(v string) {
	s.mu.Lock()
	s.input = v
	s.mu.Unlock()
	s.notify()
}

// Output returns the current output accumulator.
func (s *State) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

// SetOutput writes the output accumulator.
func (s *State) SetOutput(v string) {
	s.mu.Lock()
	s.output = v
	s.mu.Unlock()
	s.notify()
}

// SourceLang returns the selected source language code, possibly
// lingo.LangAuto.
func (s *State) SourceLang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceLang
}

// SetSourceLang selects the source language. The translation workflow also
// calls this to persist an auto-detected language, so the UI reflects what
// was actually used.
func (s *State) SetSourceLang(v string) {
	s.mu.Lock()
	s.sourceLang = v
	s.mu.Unlock()
	s.notify()
}

// TargetLang returns the selected target language code.
func (s *State) TargetLang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targetLang
}

// SetTargetLang selects the target language.
func (s *State) SetTargetLang(v string) {
	s.mu.Lock()
	s.targetLang = v
	s.mu.Unlock()
	s.notify()
}

// Level returns the bound correction level.
func (s *State) Level() lingo.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel binds the correction level for subsequent corrections.
func (s *State) SetLevel(v lingo.Level) {
	s.mu.Lock()
	s.level = v
	s.mu.Unlock()
	s.notify()
}

// Busy reports whether a primary operation is in flight.
func (s *State) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetBusy sets the busy flag.
func (s *State) SetBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
	s.notify()
}

// ErrorMessage returns the last recorded error message, empty when the last
// operation succeeded.
func (s *State) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// SetErrorMessage records an error message for the UI.
func (s *State) SetErrorMessage(v string) {
	s.mu.Lock()
	s.errMsg = v
	s.mu.Unlock()
	s.notify()
}

// Changes returns the extracted change list from the last correction.
func (s *State) Changes() []lingo.Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes
}

// SetChanges replaces the change list.
func (s *State) SetChanges(v []lingo.Change) {
	s.mu.Lock()
	s.changes = v
	s.mu.Unlock()
	s.notify()
}

// Extracting reports whether a background change extraction is in flight.
func (s *State) Extracting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extracting
}

// SetExtracting sets the extraction-busy flag.
func (s *State) SetExtracting(v bool) {
	s.mu.Lock()
	s.extracting = v
	s.mu.Unlock()
	s.notify()
}
