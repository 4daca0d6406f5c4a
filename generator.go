package lingo

import (
	"context"
	"time"
)

// ModelInfo describes one model available on the backend.
type ModelInfo struct {
	Name       string
	ModifiedAt time.Time
	Size       int64
}

// Generator is the backend client contract. Implementations wrap one HTTP
// inference backend; workflows depend on this interface only.
//
// CheckHealth and ListModels are best-effort availability probes: they
// swallow transport failures into a false/nil sentinel and never return an
// error. Callers must treat a nil model list as "unknown", not "no models".
type Generator interface {
	// CheckHealth reports whether the backend answers within a short fixed
	// timeout.
	CheckHealth(ctx context.Context) bool

	// ListModels returns the models the backend serves, or nil on any
	// failure.
	ListModels(ctx context.Context) []ModelInfo

	// Generate issues a single non-streaming generation and returns the
	// raw response text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// GenerateStream issues a streaming generation. Fragments arrive in
	// backend order; see Stream.
	GenerateStream(ctx context.Context, req GenerateRequest) (Stream, error)

	// GenerateJSON generates at low temperature, cleans the output, extracts
	// the first balanced JSON value and unmarshals it into v, retrying the
	// same request on parse failure. Terminal parse failures wrap
	// ErrMalformedOutput.
	GenerateJSON(ctx context.Context, req GenerateRequest, v any) error
}
