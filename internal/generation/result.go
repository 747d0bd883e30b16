package generation

import (
	"errors"
	"fmt"
	"strings"
)

// Status discriminates a Result.
type Status string

// Result statuses.
const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is the validated outcome of one call to the generative service.
// A succeeded Result always carries non-blank text; a failed Result always
// carries a reason.
type Result struct {
	Status Status
	Text   string
	Reason error
}

// Succeeded builds a successful Result. Blank text is not a success: it
// produces a failed Result with ErrInvalidResponse.
func Succeeded(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Failed(fmt.Errorf("%w: empty text", ErrInvalidResponse))
	}
	return Result{Status: StatusSucceeded, Text: text}
}

// Failed builds a failed Result. A nil reason is recorded as ErrInvalidResponse.
func Failed(reason error) Result {
	if reason == nil {
		reason = ErrInvalidResponse
	}
	return Result{Status: StatusFailed, Reason: reason}
}

// OK reports whether the Result succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSucceeded
}

// Err returns nil for a succeeded Result and otherwise the reason wrapped in
// ErrGenerationFailed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	if errors.Is(r.Reason, ErrGenerationFailed) {
		return r.Reason
	}
	return fmt.Errorf("%w: %w", ErrGenerationFailed, r.Reason)
}

// Unpack converts the Result into the (text, error) pair Generator returns.
func (r Result) Unpack() (string, error) {
	if err := r.Err(); err != nil {
		return "", err
	}
	return r.Text, nil
}
