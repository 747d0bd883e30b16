package domain

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// NormalizeWord strips every character outside [a-zA-Z0-9], so a word clicked
// in rendered text ("joy!", "“hope,”") is looked up in its bare form.
func NormalizeWord(word string) string {
	return nonAlphanumeric.ReplaceAllString(word, "")
}

// ExplanationRequest asks for the meaning of a single word in context.
type ExplanationRequest struct {
	Word            string
	Language        Language
	SurroundingText string
}

// NewExplanationRequest normalizes word and resolves language, defaulting to
// English. It fails with ErrEmptyWord when nothing alphanumeric remains.
func NewExplanationRequest(word, language, surroundingText string) (ExplanationRequest, error) {
	clean := NormalizeWord(word)
	if clean == "" {
		return ExplanationRequest{}, NewValidationError("word", "is required", ErrEmptyWord)
	}

	lang, err := ParseLanguage(language)
	if err != nil {
		return ExplanationRequest{}, err
	}

	return ExplanationRequest{
		Word:            clean,
		Language:        lang,
		SurroundingText: strings.TrimSpace(surroundingText),
	}, nil
}
