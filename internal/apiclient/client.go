package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound reports a 404 from the API; callers match it with errors.Is.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx response translated into a display message. The
// message comes from the body's error field when present, otherwise from
// the per-operation fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// TokenSource supplies the current bearer token; an empty string means no
// token is held and the request goes out without an Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, convenient in tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		tokens: tokens,
	}
}

// BaseURL returns the API origin the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// ImageURL resolves a stored image path against the API origin. Uploads are
// served from a static path on the API host, so relative paths get the base
// URL prefixed; absolute URLs pass through.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, withAuth bool, fallback string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if withAuth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp, fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, withAuth bool, fallback string, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", withAuth, fallback, out)
}

func apiError(resp *http.Response, fallback string) error {
	msg := fallback
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		msg = envelope.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
