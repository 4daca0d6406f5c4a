package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/lingo"
)

// Interface compliance check.
var _ lingo.Generator = (*Client)(nil)

// Client implements [lingo.Generator] for the Ollama HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	logger     *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the server base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries sets how many additional attempts GenerateJSON makes after
// a parse failure.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithLogger sets the logger used at Debug level on the swallowed-error
// paths (CheckHealth, ListModels), so best-effort probes stay diagnosable.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new Ollama [Client] with the given options. The default
// base URL is the standard local server address.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		maxRetries: defaultMaxRetries,
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CheckHealth reports whether the server answers the tags endpoint within
// healthTimeout. Any transport failure or non-2xx status yields false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp, err := c.getTags(ctx)
	if err != nil {
		c.logger.Debug("ollama: health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ListModels returns the models the server serves, or nil on any failure.
// A nil result means "unknown", not "no models".
func (c *Client) ListModels(ctx context.Context) []lingo.ModelInfo {
	resp, err := c.getTags(ctx)
	if err != nil {
		c.logger.Debug("ollama: list models failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("ollama: list models failed", "status", resp.StatusCode)
		return nil
	}

	var tags apiTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		c.logger.Debug("ollama: list models failed", "error", err)
		return nil
	}

	models := make([]lingo.ModelInfo, len(tags.Models))
	for i, m := range tags.Models {
		models[i] = lingo.ModelInfo{Name: m.Name, ModifiedAt: m.ModifiedAt, Size: m.Size}
	}
	return models
}

// Generate issues a single non-streaming generation and returns the raw
// response text.
func (c *Client) Generate(ctx context.Context, req lingo.GenerateRequest) (string, error) {
	resp, err := c.postGenerate(ctx, req, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body apiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	return body.Response, nil
}

// GenerateStream issues a streaming generation and returns a [lingo.Stream]
// over the server's NDJSON response.
func (c *Client) GenerateStream(ctx context.Context, req lingo.GenerateRequest) (lingo.Stream, error) {
	resp, err := c.postGenerate(ctx, req, true)
	if err != nil {
		return nil, err
	}
	return newStream(resp.Body), nil
}

// GenerateJSON generates at low temperature and unmarshals the first
// balanced JSON value in the cleaned output into v. Parse failures are
// retried with the same request, assuming transient model nondeterminism;
// transport failures are returned immediately. The terminal parse failure
// wraps lingo.ErrMalformedOutput.
func (c *Client) GenerateJSON(ctx context.Context, req lingo.GenerateRequest, v any) error {
	if req.Temperature == nil {
		temp := jsonTemperature
		req.Temperature = &temp
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := c.Generate(ctx, req)
		if err != nil {
			return err
		}

		payload, ok := lingo.ExtractJSON(lingo.CleanOutput(raw))
		if !ok {
			lastErr = fmt.Errorf("ollama: no JSON value in model output: %w", lingo.ErrMalformedOutput)
			continue
		}
		if err := json.Unmarshal([]byte(payload), v); err != nil {
			lastErr = fmt.Errorf("ollama: unmarshal model output: %v: %w", err, lingo.ErrMalformedOutput)
			continue
		}
		return nil
	}
	return lastErr
}

func (c *Client) getTags(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

func (c *Client) postGenerate(ctx context.Context, req lingo.GenerateRequest, stream bool) (*http.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	body, err := json.Marshal(apiGenerateRequest{
		Model:   req.Model,
		Prompt:  req.Prompt,
		System:  req.System,
		Stream:  stream,
		Options: buildOptions(req),
	})
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, parseHTTPError(resp)
	}
	return resp, nil
}

// buildOptions returns nil when no generation option is set, keeping the
// request body minimal.
func buildOptions(req lingo.GenerateRequest) *apiOptions {
	if req.Temperature == nil && req.NumCtx == 0 && req.NumPredict == 0 {
		return nil
	}
	return &apiOptions{
		Temperature: req.Temperature,
		NumCtx:      req.NumCtx,
		NumPredict:  req.NumPredict,
	}
}

func parseHTTPError(resp *http.Response) error {
	status := fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ollama: %s (failed to read body: %w)", status, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("ollama: %s: %s", status, apiErr.Error)
	}
	return fmt.Errorf("ollama: %s: %s", status, strings.TrimSpace(string(body)))
}
