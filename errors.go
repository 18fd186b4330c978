package client

import (
	"errors"
	"fmt"
)

// ErrNilClient is returned when a method is called on a nil [Client].
var ErrNilClient = errors.New("connectwise client is nil")

// ErrInvalidOutput is returned by [Client.Do] when out is neither nil nor a
// non-nil pointer. No request is sent in that case.
var ErrInvalidOutput = errors.New("out must be a non-nil pointer")

// HTTPError is returned when the API responds with a 4xx or 5xx status code.
// Body holds the raw response body exactly as received.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = "(empty error body)"
	}

	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// ParseError is returned when the API responds with a success status code but
// the response body is not valid JSON.
type ParseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %s response (status %d): %v", e.Method, e.URL, e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EncodeError is returned when a request body cannot be serialized to JSON.
// No request is sent in that case.
type EncodeError struct {
	Method string
	URL    string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s %s request body: %v", e.Method, e.URL, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
