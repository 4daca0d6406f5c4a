package lingo

import "fmt"

// GenerateRequest carries model selection and generation parameters for one
// backend call. The backend uses its own defaults for zero/nil fields.
type GenerateRequest struct {
	Model  string
	Prompt string
	// System is submitted as a separate API field. It is empty when the
	// prompt already embeds role markers (see PromptResult).
	System      string
	Temperature *float64 // nil = backend default
	NumCtx      int      // context window override; 0 = backend default
	NumPredict  int      // generation length cap; 0 = backend default
}

// Validate checks universal constraints on GenerateRequest.
// Backend implementations may apply additional validation.
func (r GenerateRequest) Validate() error {
	if r.Model == "" {
		return fmt.Errorf("model is required: %w", ErrValidation)
	}
	if r.Prompt == "" {
		return fmt.Errorf("prompt is required: %w", ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.NumCtx < 0 {
		return fmt.Errorf("num_ctx must be non-negative, got %d: %w", r.NumCtx, ErrValidation)
	}
	if r.NumPredict < 0 {
		return fmt.Errorf("num_predict must be non-negative, got %d: %w", r.NumPredict, ErrValidation)
	}
	return nil
}
