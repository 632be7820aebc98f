package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors for backend operations
var (
	// ErrNotFound wraps 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrNoBaseURL is returned when the client was built without a backend address.
	ErrNoBaseURL = errors.New("backend base URL not configured")
)

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
