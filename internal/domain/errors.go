package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation.
	// Every more specific validation error below wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTopic is returned when a generation topic is blank.
	ErrEmptyTopic = fmt.Errorf("%w: topic cannot be empty", ErrValidation)

	// ErrWordCountOutOfRange is returned when the target word count falls
	// outside [MinWordCount, MaxWordCount].
	ErrWordCountOutOfRange = fmt.Errorf("%w: word count out of range", ErrValidation)

	// ErrInvalidOption is returned when an enum field holds an unknown value.
	ErrInvalidOption = fmt.Errorf("%w: invalid option", ErrValidation)

	// ErrEmptyWord is returned when a word is empty after normalization.
	ErrEmptyWord = fmt.Errorf("%w: word cannot be empty", ErrValidation)
)

// ValidationError carries the offending field alongside the sentinel error.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
