package ollama

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/lingo"
)

// Interface compliance check.
var _ lingo.Stream = (*stream)(nil)

// stream decodes NDJSON generate responses into fragments. The scanner
// buffers partial lines across network reads, so one Next call corresponds
// to one complete line from the server.
type stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool
}

func newStream(body io.ReadCloser) *stream {
	scanner := bufio.NewScanner(body)
	// Fragments are cumulative snapshots and can grow well past the default
	// scanner limit on long outputs.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &stream{body: body, scanner: scanner}
}

// Next returns the next response fragment. Lines that fail to parse or
// carry no response field are skipped, not surfaced as errors. Returns
// io.EOF after the done=true object or when the connection closes.
func (s *stream) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk apiGenerateResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			continue
		}

		if chunk.Done {
			s.done = true
		}
		if chunk.Response == "" {
			if s.done {
				return "", io.EOF
			}
			continue
		}
		return chunk.Response, nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("ollama: read stream: %w", err)
	}
	return "", io.EOF
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	return s.body.Close()
}
