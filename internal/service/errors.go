package service

import (
	"errors"
	"fmt"

	"github.com/inspiro-ai/inspiro-api/internal/session"
)

// Service sentinel errors. The API layer maps these to HTTP status codes.
var (
	// ErrSuperseded indicates a newer request for the same session began
	// while this one was in flight, so its result was discarded.
	// API layer should map this to HTTP 409 Conflict.
	ErrSuperseded = session.ErrSuperseded
)

// ContentServiceError wraps errors from the content service with context.
type ContentServiceError struct {
	// Operation is the operation that failed (e.g., "compose", "explain")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ContentServiceError.
func (e *ContentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("content service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContentServiceError) Unwrap() error {
	return e.Err
}

// NewContentServiceError creates a new ContentServiceError.
// It returns ErrSuperseded directly without wrapping.
func NewContentServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrSuperseded) {
		return ErrSuperseded
	}

	return &ContentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
