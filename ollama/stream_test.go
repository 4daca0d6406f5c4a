package ollama_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamServer returns a test server that answers /api/generate with the
// given NDJSON body.
func streamServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func drain(t *testing.T, s lingo.Stream) []string {
	t.Helper()
	var fragments []string
	for {
		fragment, err := s.Next()
		if err == io.EOF {
			return fragments
		}
		require.NoError(t, err)
		fragments = append(fragments, fragment)
	}
}

func TestStream_Next(t *testing.T) {
	t.Parallel()

	t.Run("fragments surface in arrival order", func(t *testing.T) {
		t.Parallel()
		srv := streamServer(t,
			`{"response":"Hello","done":false}`+"\n"+
				`{"response":"Hello wor","done":false}`+"\n"+
				`{"response":"Hello world","done":false}`+"\n"+
				`{"response":"","done":true}`+"\n")

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		s, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.NoError(t, err)
		defer s.Close()

		assert.Equal(t, []string{"Hello", "Hello wor", "Hello world"}, drain(t, s))
	})

	t.Run("malformed lines skipped silently", func(t *testing.T) {
		t.Parallel()
		srv := streamServer(t,
			`{"response":"one","done":false}`+"\n"+
				"this is not json\n"+
				`{"unrelated":"object"}`+"\n"+
				"\n"+
				`{"response":"two","done":true}`+"\n")

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		s, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.NoError(t, err)
		defer s.Close()

		assert.Equal(t, []string{"one", "two"}, drain(t, s))
	})

	t.Run("fragment on the done line is delivered before EOF", func(t *testing.T) {
		t.Parallel()
		srv := streamServer(t, `{"response":"everything","done":true,"total_duration":123,"eval_count":7}`+"\n")

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		s, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.NoError(t, err)
		defer s.Close()

		assert.Equal(t, []string{"everything"}, drain(t, s))

		_, err = s.Next()
		assert.Equal(t, io.EOF, err, "exhausted streams stay exhausted")
	})

	t.Run("connection close without done object ends the stream", func(t *testing.T) {
		t.Parallel()
		srv := streamServer(t, `{"response":"partial","done":false}`+"\n")

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		s, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.NoError(t, err)
		defer s.Close()

		assert.Equal(t, []string{"partial"}, drain(t, s))
	})

	t.Run("HTTP error surfaces before any stream exists", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"model not found"}`))
		}))
		defer srv.Close()

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		_, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("stream request body sets stream true", func(t *testing.T) {
		t.Parallel()
		var captured []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"response":"ok","done":true}` + "\n"))
		}))
		defer srv.Close()

		client := ollama.New(ollama.WithBaseURL(srv.URL))
		s, err := client.GenerateStream(context.Background(), lingo.GenerateRequest{Model: "m", Prompt: "p"})
		require.NoError(t, err)
		defer s.Close()
		drain(t, s)

		assert.Contains(t, string(captured), `"stream":true`)
	})
}
