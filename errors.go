package lingo

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request or enum value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMalformedOutput indicates model output that could not be parsed as
	// the requested structure, even after cleaning and repair.
	ErrMalformedOutput = errors.New("malformed model output")
)
