package api

import (
	"fmt"
	"net/http"
	"strings"
)

// TransportError means no usable response reached the client: network
// failure, DNS, timeout, or a context cancelled before the response was
// applied. It is retryable in a way an APIError is not.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError means the server responded and rejected the request. Message
// carries the server's human-readable reason when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.Status)
}

// Unauthorized reports whether the rejection was an authentication
// failure. A token rejected by the server can never become valid again,
// so the client treats this as a forced logout.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// DataError means the response arrived and parsed as JSON but violates
// the expected shape: an unknown status value, a missing field, a
// mistyped column.
type DataError struct {
	Endpoint string
	Problems []string
	Cause    error
}

func (e *DataError) Error() string {
	if len(e.Problems) > 0 {
		return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, strings.Join(e.Problems, "; "))
	}
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Cause)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}
