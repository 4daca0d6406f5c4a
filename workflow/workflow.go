// Package workflow implements the translation and correction workflows on
// top of a [lingo.Generator] backend and the shared response cache.
//
// Each workflow holds at most one live primary operation; starting a new one
// supersedes (cancels) the prior one. The correction workflow additionally
// runs a background change-extraction task with its own, independent
// cancellation handle. Cancellation is cooperative: a superseded operation
// is signaled through its context, but correctness rests on every state and
// cache commit re-checking that its operation is still current.
package workflow

import (
	"context"
	"sync"

	"github.com/fwojciec/lingo"
)

// Fallback messages for errors with no usable text of their own, and the
// generic reason on the whole-text fallback change.
const (
	translationFailed = "Translation failed"
	correctionFailed  = "Correction failed"
	textCorrected     = "Text was corrected."
)

// extractionTemperature keeps the change-extraction task deterministic
// enough to emit parseable JSON most of the time.
const extractionTemperature = 0.1

// Option configures a single workflow call.
type Option func(*callConfig)

type callConfig struct {
	skipCache bool
	level     *lingo.Level
}

// WithSkipCache bypasses the cache read for this call. The result is still
// written back to the cache.
func WithSkipCache() Option {
	return func(c *callConfig) { c.skipCache = true }
}

// WithLevel sets the correction level for this call and binds it for
// subsequent calls. Ignored by the translation workflow.
func WithLevel(level lingo.Level) Option {
	return func(c *callConfig) { c.level = &level }
}

// errorMessage renders err for UI state. An error with no message of its
// own is coerced to the fallback so a misbehaving dependency cannot blank
// the error line.
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// handle tracks at most one in-flight operation. Commits made by an
// operation are gated on its id still being current, which resolves the
// "new operation started while the old one is still pending" race: only the
// new operation's results are ever committed.
type handle struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// begin supersedes any in-flight operation and registers a new one derived
// from parent.
func (h *handle) begin(parent context.Context) (context.Context, uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	h.cancel = cancel
	h.seq++
	return ctx, h.seq
}

// current reports whether id is still the live operation.
func (h *handle) current(id uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seq == id
}

// cancelActive signals the live operation and supersedes it so a late
// resolution cannot commit. Reports whether there was one to cancel.
func (h *handle) cancelActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel == nil {
		return false
	}
	h.cancel()
	h.cancel = nil
	h.seq++
	return true
}

// finish releases the operation's context resources once it has returned.
// The id stays current, so commits made before finish are unaffected.
func (h *handle) finish(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seq == id && h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}
