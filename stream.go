package lingo

// Stream is a pull-based iterator over streamed generation fragments.
// Cancellation flows through the context passed to Generator.GenerateStream.
//
// Each fragment is a cumulative snapshot of the output so far, not a delta:
// consumers overwrite their accumulator with each arriving fragment rather
// than concatenating. Next returns io.EOF when the backend signals
// completion or the underlying connection closes. A stream is finite and not
// restartable; retrying requires a fresh GenerateStream call.
type Stream interface {
	Next() (string, error)
	Close() error
}
