package api

import (
	"time"
)

// GenerateContentRequest defines the payload for POST /api/content.
// Option values are checked case-insensitively by the domain layer; blank
// options take their defaults.
type GenerateContentRequest struct {
	Topic     string `json:"topic"      validate:"required,max=500"`
	Format    string `json:"format"     validate:"omitempty,max=32"`
	Tone      string `json:"tone"       validate:"omitempty,max=32"`
	Style     string `json:"style"      validate:"omitempty,max=32"`
	WordCount int    `json:"word_count" validate:"omitempty,min=50,max=1000"`
	Language  string `json:"language"   validate:"omitempty,max=32"`
}

// ContentResponse defines the successful response for POST /api/content.
type ContentResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`

	// Source is "generated" or "fallback"
	Source string `json:"source"`

	Format    string `json:"format"`
	Language  string `json:"language"`
	WordCount int    `json:"word_count"`

	// Sequence is the request's position within its session, omitted when untracked
	Sequence uint64 `json:"sequence,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ExplainWordRequest defines the payload for POST /api/content/explain.
type ExplainWordRequest struct {
	Word     string `json:"word"     validate:"required,max=100"`
	Language string `json:"language" validate:"omitempty,max=32"`

	// Context is the text the word appeared in
	Context string `json:"context"  validate:"max=20000"`
}

// ExplanationResponse defines the successful response for POST /api/content/explain.
type ExplanationResponse struct {
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
	Source      string `json:"source"`
}

// DownloadRequest defines the payload for POST /api/content/download.
type DownloadRequest struct {
	Content string `json:"content" validate:"required"`
	Format  string `json:"format"  validate:"omitempty,max=32"`
}
