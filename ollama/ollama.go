// Package ollama implements [lingo.Generator] for a locally running Ollama
// server.
//
// The server's streaming protocol is newline-delimited JSON: one object per
// line, each carrying a cumulative response snapshot, with done=true on the
// final object. The stream decoder buffers partial lines across reads and
// silently skips lines that fail to parse or carry no response field —
// resilience against the server interleaving keep-alive and stats objects.
package ollama

import "time"

const (
	defaultBaseURL = "http://localhost:11434"
	tagsPath       = "/api/tags"
	generatePath   = "/api/generate"

	// healthTimeout bounds the availability probe. All other calls rely on
	// caller cancellation or the server's own completion.
	healthTimeout = 5 * time.Second

	// jsonTemperature is the default for structured-output requests.
	// Low temperature reduces the odds of malformed JSON.
	jsonTemperature = 0.1

	// defaultMaxRetries is the number of additional attempts GenerateJSON
	// makes after a parse failure.
	defaultMaxRetries = 2
)

// apiGenerateRequest is the JSON body sent to POST /api/generate.
type apiGenerateRequest struct {
	Model   string      `json:"model"`
	Prompt  string      `json:"prompt"`
	System  string      `json:"system,omitempty"`
	Stream  bool        `json:"stream"`
	Options *apiOptions `json:"options,omitempty"`
}

type apiOptions struct {
	Temperature *float64 `json:"temperature,omitempty"`
	NumCtx      int      `json:"num_ctx,omitempty"`
	NumPredict  int      `json:"num_predict,omitempty"`
}

// apiGenerateResponse is one generate response object. Non-streaming
// responses are a single object of this shape; streaming responses are one
// object per line.
type apiGenerateResponse struct {
	Model         string `json:"model"`
	Response      string `json:"response"`
	Done          bool   `json:"done"`
	TotalDuration int64  `json:"total_duration,omitempty"`
	EvalCount     int    `json:"eval_count,omitempty"`
}

// apiTagsResponse is the body of GET /api/tags.
type apiTagsResponse struct {
	Models []apiModel `json:"models"`
}

type apiModel struct {
	Name       string    `json:"name"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
}

// apiErrorResponse is the JSON body returned on non-2xx HTTP responses.
type apiErrorResponse struct {
	Error string `json:"error"`
}
