package api

import (
	"errors"
	"fmt"
)

// Common errors returned by the orchestrator client.
var (
	// ErrServerUnavailable is returned when the backend cannot be reached
	// at all (connection refused, DNS failure, timeout).
	ErrServerUnavailable = errors.New("orchestrator unavailable")

	// ErrNotFound is returned when a requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidPayload is returned when a response arrives but is missing
	// the fields the caller needs. Treated as absence, never as a crash.
	ErrInvalidPayload = errors.New("invalid response payload")
)

// APIError wraps a failed client operation with context. StatusCode is 0
// for transport failures (no response reached us at all).
type APIError struct {
	Operation  string // e.g. "system_status", "list_tasks"
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s failed (HTTP %d): %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("api: %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError.
func NewAPIError(operation string, statusCode int, err error) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsServerUnavailable reports whether err indicates the backend was
// unreachable rather than answering with an error status.
func IsServerUnavailable(err error) bool {
	return errors.Is(err, ErrServerUnavailable)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
