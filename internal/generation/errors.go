package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is the normalized failure every Generator returns.
	// More specific causes below are wrapped alongside it.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrServiceUnavailable is returned when the LLM service could not be reached
	// or answered with a non-success status
	ErrServiceUnavailable = errors.New("language model service unavailable")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
