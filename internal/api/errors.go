package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is wrapped by every 404 response
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is wrapped by every 400 response
	ErrBadRequest = errors.New("bad request")

	// ErrUnavailable is wrapped when the backend cannot be reached or answers 5xx
	ErrUnavailable = errors.New("backend unavailable")
)

// APIError describes a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s (request %s)", e.Method, e.Path, e.StatusCode, msg, e.RequestID)
}

// Unwrap maps status codes onto the package sentinels
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode >= 500:
		return ErrUnavailable
	}
	return nil
}
