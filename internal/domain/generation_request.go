package domain

import (
	"fmt"
	"strings"
)

// Word count bounds enforced on a GenerationRequest. The browser slider moves
// in steps of 50 between these values.
const (
	MinWordCount     = 50
	MaxWordCount     = 1000
	DefaultWordCount = 500
)

// GenerationParams holds raw, user-supplied generation parameters before
// defaults are applied and values are validated.
type GenerationParams struct {
	Topic     string
	Format    string
	Tone      string
	Style     string
	WordCount int
	Language  string
}

// GenerationRequest is a validated request for a poem or essay.
// Build it with NewGenerationRequest; the zero value is not valid.
type GenerationRequest struct {
	Topic     string
	Format    Format
	Tone      Tone
	Style     Style
	WordCount int
	Language  Language
}

// NewGenerationRequest applies defaults to blank fields and validates the
// result. A WordCount of zero selects DefaultWordCount; any other value outside
// [MinWordCount, MaxWordCount] is rejected rather than clamped.
func NewGenerationRequest(p GenerationParams) (GenerationRequest, error) {
	topic := strings.TrimSpace(p.Topic)
	if topic == "" {
		return GenerationRequest{}, NewValidationError("topic", "is required", ErrEmptyTopic)
	}

	format, err := ParseFormat(p.Format)
	if err != nil {
		return GenerationRequest{}, err
	}
	tone, err := ParseTone(p.Tone)
	if err != nil {
		return GenerationRequest{}, err
	}
	style, err := ParseStyle(p.Style)
	if err != nil {
		return GenerationRequest{}, err
	}
	language, err := ParseLanguage(p.Language)
	if err != nil {
		return GenerationRequest{}, err
	}

	wordCount := p.WordCount
	if wordCount == 0 {
		wordCount = DefaultWordCount
	}
	if wordCount < MinWordCount || wordCount > MaxWordCount {
		return GenerationRequest{}, NewValidationError(
			"word_count",
			fmt.Sprintf("must be between %d and %d, got %d", MinWordCount, MaxWordCount, wordCount),
			ErrWordCountOutOfRange,
		)
	}

	return GenerationRequest{
		Topic:     topic,
		Format:    format,
		Tone:      tone,
		Style:     style,
		WordCount: wordCount,
		Language:  language,
	}, nil
}

// Validate reports whether r satisfies the invariants NewGenerationRequest
// establishes. It lets adapters reject hand-built values.
func (r GenerationRequest) Validate() error {
	_, err := NewGenerationRequest(GenerationParams{
		Topic:     r.Topic,
		Format:    string(r.Format),
		Tone:      string(r.Tone),
		Style:     string(r.Style),
		WordCount: r.WordCount,
		Language:  string(r.Language),
	})
	return err
}
