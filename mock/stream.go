package mock

import (
	"io"

	"github.com/fwojciec/lingo"
)

// Interface compliance check.
var _ lingo.Stream = (*Stream)(nil)

// Stream is a test double for lingo.Stream.
// NextFn panics when nil to catch missing setup. CloseFn is nil-safe
// (no-op) because test code commonly calls defer stream.Close() without
// caring about the result.
type Stream struct {
	NextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (string, error) {
	return s.NextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// Fragments returns a Stream that yields the given fragments in order and
// then io.EOF, mirroring the backend's cumulative-snapshot protocol.
func Fragments(fragments ...string) *Stream {
	i := 0
	return &Stream{
		NextFn: func() (string, error) {
			if i >= len(fragments) {
				return "", io.EOF
			}
			f := fragments[i]
			i++
			return f, nil
		},
	}
}
