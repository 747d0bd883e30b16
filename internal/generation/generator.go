package generation

import (
	"context"

	"github.com/inspiro-ai/inspiro-api/internal/domain"
)

// Generator produces text from the external generative service.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate writes a poem or essay for the request.
	// It returns the service text verbatim on success and never returns an
	// empty string with a nil error. Any failure wraps ErrGenerationFailed.
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)

	// Explain describes a single word as it is used in the surrounding text,
	// written in the requested language. Failures wrap ErrGenerationFailed.
	Explain(ctx context.Context, req domain.ExplanationRequest) (string, error)
}
