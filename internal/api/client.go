// Package api wraps outbound requests to the tracker backend: it
// attaches the session token, serializes and parses JSON, and classifies
// every outcome as success, server rejection, transport failure, or
// malformed data. All four outcomes are returned as values so callers
// can branch exhaustively; nothing escapes as a panic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobtrack/internal/session"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the single place token attachment and error classification
// live; views never issue raw HTTP calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Manager
}

// Response is a successful (2xx) server response.
type Response struct {
	Status int
	Body   []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// NewClient creates a client bound to a session manager. The manager is
// consulted for the token on every request and forced to log out when
// the server reports the token invalid.
func NewClient(cfg Config, sess *session.Manager) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if sess == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    sess,
	}, nil
}

// Do issues a request against the backend. A struct body is JSON
// encoded; an io.Reader body passes through unencoded with the content
// type left to be inferred (binary upload path). The bearer token is
// attached when a session is present and omitted otherwise.
//
// Outcomes: a 2xx response returns *Response; a non-2xx response returns
// *APIError (forcing a logout first when it was a 401); a failed network
// call returns *TransportError. If ctx is done by the time the response
// arrives the result is discarded and a *TransportError wrapping
// ctx.Err() is returned, so a torn-down view never sees a stale result.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	var contentType string
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}

	// Teardown guard: the caller's view is gone, discard the result.
	if ctx.Err() != nil {
		return nil, &TransportError{Op: op, Cause: ctx.Err()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
		if apiErr.Unauthorized() {
			// A rejected token never becomes valid again: clear it
			// rather than letting it linger in the credential store.
			_ = c.session.Logout()
		}
		return nil, apiErr
	}

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

// errorMessage extracts the server's {"error": ...} reason, if present.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
