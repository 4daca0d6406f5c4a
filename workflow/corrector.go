package workflow

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/cache"
)

// Corrector runs the correction workflow. It shares the Translator's shape
// and additionally owns the background change-extraction task, which has
// its own cancellation handle: cancelling a correction does not cancel a
// running extraction, and vice versa.
type Corrector struct {
	gen        lingo.Generator
	cache      *cache.Cache
	detector   lingo.Detector
	config     lingo.Config
	state      *State
	op         handle
	extraction handle
}

// NewCorrector creates a Corrector writing to the given state container.
func NewCorrector(gen lingo.Generator, c *cache.Cache, d lingo.Detector, cfg lingo.Config, st *State) *Corrector {
	return &Corrector{gen: gen, cache: c, detector: d, config: cfg, state: st}
}

// Correct runs one correction at the bound (or per-call) level. The text
// language is always auto-detected; there is no manual override. An empty
// text argument falls back to the bound input; input that is empty after
// trimming is a silent no-op. The returned value is the corrected text;
// change extraction runs in the background and lands in the state's change
// list without blocking this call.
func (c *Corrector) Correct(ctx context.Context, text string, opts ...Option) (string, error) {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(text) == "" {
		text = c.state.Input()
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	level := c.state.Level()
	if cfg.level != nil {
		level = *cfg.level
		c.state.SetLevel(level)
	}
	if err := level.Validate(); err != nil {
		return "", err
	}

	runCtx, id := c.op.begin(ctx)
	defer c.op.finish(id)

	// Extraction must not straddle two corrections: supersede any running
	// extraction and drop the stale change list before generating.
	c.cancelExtraction()
	c.state.SetChanges(nil)

	c.state.SetBusy(true)
	c.state.SetErrorMessage("")
	c.state.SetOutput("")

	result, err := c.run(runCtx, id, text, level, cfg.skipCache)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", nil
		}
		if c.op.current(id) {
			c.state.SetErrorMessage(errorMessage(err, correctionFailed))
			c.state.SetBusy(false)
		}
		return "", err
	}
	if !c.op.current(id) {
		return "", nil
	}
	c.state.SetBusy(false)
	return result, nil
}

// SetLevel binds the correction level for subsequent Correct calls.
func (c *Corrector) SetLevel(level lingo.Level) {
	c.state.SetLevel(level)
}

// Cancel signals the in-flight correction, if any, and clears the busy
// flag. It deliberately leaves the extraction task alone; callers needing a
// full teardown must treat the two as independent cancellation domains.
func (c *Corrector) Cancel() {
	if c.op.cancelActive() {
		c.state.SetBusy(false)
	}
}

func (c *Corrector) run(ctx context.Context, id uint64, text string, level lingo.Level, skipCache bool) (string, error) {
	lang := c.detector.Detect(text)
	explainLang := c.config.ExplanationLanguage()
	if explainLang == "" || explainLang == lingo.LangAuto {
		explainLang = lang
	}
	model := c.config.CorrectionModel()

	key := cache.Fingerprint(model, text, lang, string(level))
	if !skipCache {
		if v, ok := c.cache.Get(key); ok {
			if c.op.current(id) {
				c.state.SetOutput(v)
				// The extraction result itself is never cached, so a cache
				// hit still needs fresh change annotations.
				c.maybeExtract(ctx, text, v, lang, explainLang, model)
			}
			return v, nil
		}
	}

	p := lingo.BuildCorrection(text, lang, level, model)
	req := lingo.GenerateRequest{Model: model, Prompt: p.Prompt, System: p.System}

	var result string
	if c.config.UseStreaming() {
		var err error
		if result, err = c.consumeStream(ctx, id, req); err != nil {
			return "", err
		}
	} else {
		raw, err := c.gen.Generate(ctx, req)
		if err != nil {
			return "", err
		}
		result = lingo.CleanOutput(raw)
	}

	if c.op.current(id) {
		c.cache.Set(key, result)
		c.state.SetOutput(result)
		c.maybeExtract(ctx, text, result, lang, explainLang, model)
	}
	return result, nil
}

func (c *Corrector) consumeStream(ctx context.Context, id uint64, req lingo.GenerateRequest) (string, error) {
	s, err := c.gen.GenerateStream(ctx, req)
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
		// Clean every intermediate snapshot, not only the final one, so the
		// UI never flashes raw control tokens.
		result = lingo.CleanOutput(fragment)
		if c.op.current(id) {
			c.state.SetOutput(result)
		}
	}
}

// maybeExtract starts background change extraction when the corrected text
// differs from the input after trimming; identical texts explicitly skip
// the task. The extraction detaches from the caller's context — its
// lifetime is governed solely by its own handle.
func (c *Corrector) maybeExtract(ctx context.Context, original, corrected, textLang, explainLang, model string) {
	if strings.TrimSpace(original) == strings.TrimSpace(corrected) {
		return
	}
	extractCtx, id := c.extraction.begin(context.WithoutCancel(ctx))
	c.state.SetExtracting(true)
	go c.extract(extractCtx, id, original, corrected, textLang, explainLang, model)
}

// extract asks the model to enumerate structured edits and commits the
// result. Every exit point re-checks that this extraction is still current;
// a superseded extraction discards its response without touching the change
// list or the extraction-busy flag.
func (c *Corrector) extract(ctx context.Context, id uint64, original, corrected, textLang, explainLang, model string) {
	defer c.extraction.finish(id)

	prompt := lingo.BuildChangesExtraction(original, corrected, textLang, explainLang)
	temp := extractionTemperature
	raw, err := c.gen.Generate(ctx, lingo.GenerateRequest{Model: model, Prompt: prompt, Temperature: &temp})
	if err != nil {
		if errors.Is(err, context.Canceled) || !c.extraction.current(id) {
			return
		}
		// Transport failures degrade to the whole-text fallback; extraction
		// errors never propagate to the correction's caller.
		c.commitChanges(id, []lingo.Change{lingo.FallbackChange(original, corrected, textCorrected)})
		return
	}
	if !c.extraction.current(id) {
		return
	}

	changes, perr := lingo.ParseChanges(raw)
	if !c.extraction.current(id) {
		return
	}
	if perr != nil || len(changes) == 0 {
		// Malformed or empty output still yields a visible diff: the text
		// demonstrably changed.
		changes = []lingo.Change{lingo.FallbackChange(original, corrected, textCorrected)}
	}
	c.commitChanges(id, changes)
}

func (c *Corrector) commitChanges(id uint64, changes []lingo.Change) {
	if !c.extraction.current(id) {
		return
	}
	c.state.SetChanges(changes)
	c.state.SetExtracting(false)
}

// cancelExtraction supersedes any running extraction and clears the
// extraction-busy flag.
func (c *Corrector) cancelExtraction() {
	if c.extraction.cancelActive() {
		c.state.SetExtracting(false)
	}
}
