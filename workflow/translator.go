package workflow

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/cache"
)

// Translator runs the translation workflow: cache lookup, prompt
// construction, generation and cache write, with at most one operation in
// flight.
type Translator struct {
	gen      lingo.Generator
	cache    *cache.Cache
	detector lingo.Detector
	config   lingo.Config
	state    *State
	op       handle
}

// NewTranslator creates a Translator writing to the given state container.
func NewTranslator(gen lingo.Generator, c *cache.Cache, d lingo.Detector, cfg lingo.Config, st *State) *Translator {
	return &Translator{gen: gen, cache: c, detector: d, config: cfg, state: st}
}

// Translate runs one translation. An empty text argument falls back to the
// bound input; input that is empty after trimming is a silent no-op, not an
// error. A cancelled operation returns ("", nil) and leaves no trace in
// output, cache or error state. Other failures are recorded in the state
// and returned.
func (t *Translator) Translate(ctx context.Context, text string, opts ...Option) (string, error) {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(text) == "" {
		text = t.state.Input()
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	runCtx, id := t.op.begin(ctx)
	defer t.op.finish(id)

	t.state.SetBusy(true)
	t.state.SetErrorMessage("")
	t.state.SetOutput("")

	result, err := t.run(runCtx, id, text, cfg.skipCache)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Not a real error; Cancel() or the superseding call already put
			// the state where it belongs.
			return "", nil
		}
		if t.op.current(id) {
			t.state.SetErrorMessage(errorMessage(err, translationFailed))
			t.state.SetBusy(false)
		}
		return "", err
	}
	if !t.op.current(id) {
		return "", nil
	}
	t.state.SetBusy(false)
	return result, nil
}

// TranslateText binds text as the workflow input, then translates it.
func (t *Translator) TranslateText(ctx context.Context, text string, opts ...Option) (string, error) {
	t.state.SetInput(text)
	return t.Translate(ctx, text, opts...)
}

// Cancel signals the in-flight translation, if any, and clears the busy
// flag. Idempotent.
func (t *Translator) Cancel() {
	if t.op.cancelActive() {
		t.state.SetBusy(false)
	}
}

func (t *Translator) run(ctx context.Context, id uint64, text string, skipCache bool) (string, error) {
	source := t.state.SourceLang()
	if source == "" || source == lingo.LangAuto {
		source = t.detector.Detect(text)
		if t.op.current(id) {
			// Persist what was actually used, so the UI reflects it.
			t.state.SetSourceLang(source)
		}
	}
	target := t.state.TargetLang()
	model := t.config.TranslationModel()

	key := cache.Fingerprint(model, text, source, target)
	if !skipCache {
		if v, ok := t.cache.Get(key); ok {
			if t.op.current(id) {
				t.state.SetOutput(v)
			}
			return v, nil
		}
	}

	p := lingo.BuildTranslation(text, source, target, model)
	req := lingo.GenerateRequest{Model: model, Prompt: p.Prompt, System: p.System}

	var result string
	if t.config.UseStreaming() {
		var err error
		if result, err = t.consumeStream(ctx, id, req); err != nil {
			return "", err
		}
	} else {
		var err error
		if result, err = t.gen.Generate(ctx, req); err != nil {
			return "", err
		}
	}

	if t.op.current(id) {
		// Written even on a skip-cache run; skip-cache bypasses the read
		// only.
		t.cache.Set(key, result)
		t.state.SetOutput(result)
	}
	return result, nil
}

func (t *Translator) consumeStream(ctx context.Context, id uint64, req lingo.GenerateRequest) (string, error) {
	s, err := t.gen.GenerateStream(ctx, req)
	if err != nil {
		return "", err
	}
	defer s.Close()

	var result string
	for {
		fragment, err := s.Next()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return "", err
		}
		// Fragments are cumulative snapshots; overwrite, never append.
		result = fragment
		if t.op.current(id) {
			t.state.SetOutput(fragment)
		}
	}
}
