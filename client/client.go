// Package client provides typed wrappers over the CasaCare admin REST API.
// Every method is a single request-response round trip: bodies are JSON,
// the bearer token comes from a TokenSource, and non-2xx responses become
// errors carrying the backend's message. Nothing is retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token string
type StaticToken string

// Token returns the static token value
func (s StaticToken) Token() string { return string(s) }

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to the admin API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a Client for the given base URL. tokens may be nil for a
// client that only calls public endpoints.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// SetHTTPClient replaces the underlying HTTP client (primarily for testing)
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// envelope is the error half of every backend response
type envelope struct {
	Message string `json:"message"`
}

// do executes one JSON round trip. body and out may be nil. On a non-2xx
// status the backend's envelope message is returned as an *APIError,
// falling back to the per-operation message when the body is unreadable.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		message := fallback
		if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
			message = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodPatch, path, body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, fallback)
}

// Upload posts a file to /api/upload as multipart form data and returns the
// stored file path
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	var out struct {
		Message string `json:"message"`
		Path    string `json:"path"`
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := "Failed to upload file"
		if err := json.Unmarshal(data, &out); err == nil && out.Message != "" {
			message = out.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return out.Path, nil
}
