// Package mock provides test doubles for lingo interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/lingo"
)

// Interface compliance check.
var _ lingo.Generator = (*Generator)(nil)

// Generator is a test double for lingo.Generator.
// Set the function fields for the methods you need. GenerateFn and
// GenerateStreamFn panic when nil to catch missing setup. The probe methods
// are nil-safe (healthy and no models) because most tests never exercise
// them.
type Generator struct {
	CheckHealthFn    func(ctx context.Context) bool
	ListModelsFn     func(ctx context.Context) []lingo.ModelInfo
	GenerateFn       func(ctx context.Context, req lingo.GenerateRequest) (string, error)
	GenerateStreamFn func(ctx context.Context, req lingo.GenerateRequest) (lingo.Stream, error)
	GenerateJSONFn   func(ctx context.Context, req lingo.GenerateRequest, v any) error
}

// CheckHealth delegates to CheckHealthFn. Returns true when nil.
func (g *Generator) CheckHealth(ctx context.Context) bool {
	if g.CheckHealthFn == nil {
		return true
	}
	return g.CheckHealthFn(ctx)
}

// ListModels delegates to ListModelsFn. Returns nil when nil.
func (g *Generator) ListModels(ctx context.Context) []lingo.ModelInfo {
	if g.ListModelsFn == nil {
		return nil
	}
	return g.ListModelsFn(ctx)
}

// Generate delegates to GenerateFn.
func (g *Generator) Generate(ctx context.Context, req lingo.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

// GenerateStream delegates to GenerateStreamFn.
func (g *Generator) GenerateStream(ctx context.Context, req lingo.GenerateRequest) (lingo.Stream, error) {
	return g.GenerateStreamFn(ctx, req)
}

// GenerateJSON delegates to GenerateJSONFn. Returns nil when nil.
func (g *Generator) GenerateJSON(ctx context.Context, req lingo.GenerateRequest, v any) error {
	if g.GenerateJSONFn == nil {
		return nil
	}
	return g.GenerateJSONFn(ctx, req, v)
}
