package restapi

import (
	"errors"
	"fmt"
)

var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// HTTPError is returned when the API answers with a status of 400 or more.
// Payload is the raw response body.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Payload    []byte
}

func (e *HTTPError) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Payload)
}

// TransportError is returned when no HTTP response was received at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Error during %s request to %s", e.Method, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode reports the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
