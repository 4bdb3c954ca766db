package mcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
)

// APIClient is a thin HTTP client for the back-office REST API. Responses are
// passed through as raw JSON so the tools never reshape what the API says.
type APIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAPIClient creates a client for the configured API base URL. Every
// request is bounded by the configured timeout.
func NewAPIClient(cfg Config) *APIClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 20
	}
	return &APIClient{
		baseURL: cfg.ApiBaseURL,
		apiKey:  cfg.ApiKey,
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Get performs a GET request against the API.
func (c *APIClient) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON payload against the API.
func (c *APIClient) Post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

// do executes the request. Non-2xx responses are not treated as errors:
// they are wrapped in an {"ok":false,"status":...,"body":...} envelope so the
// calling agent sees what the API rejected and why.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, payload any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return wrapAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// wrapAPIError folds an error response into the {"ok":false,...} envelope.
// The body stays JSON when it was JSON, otherwise it becomes a plain string.
func wrapAPIError(status int, data []byte) (json.RawMessage, error) {
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		body = string(data)
	}
	envelope := map[string]any{
		"ok":     false,
		"status": status,
		"body":   body,
	}
	out, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode error envelope: %w", err)
	}
	return out, nil
}
