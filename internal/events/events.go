package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names the outcome an event reports.
type Type string

const (
	// ContentGenerated reports text written by the generative service.
	ContentGenerated Type = "content.generated"
	// ContentFallback reports fallback text served after a service failure.
	ContentFallback Type = "content.fallback"
	// ContentSuperseded reports a result discarded because a newer request
	// for the same session began.
	ContentSuperseded Type = "content.superseded"
	// WordExplained reports an explanation written by the generative service.
	WordExplained Type = "word.explained"
	// WordFallback reports a built-in explanation served after a failure.
	WordFallback Type = "word.fallback"
)

// ContentEvent describes one outcome of a generation or explanation request.
type ContentEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates which outcome occurred
	Type Type `json:"type"`

	// SessionKey is the caller's session, empty when untracked
	SessionKey string `json:"session_key,omitempty"`

	// Sequence is the request's position within its session
	Sequence uint64 `json:"sequence,omitempty"`

	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`

	// Reason carries the failure cause for fallback events
	Reason string `json:"reason,omitempty"`

	// OccurredAt is the timestamp when the outcome was decided
	OccurredAt time.Time `json:"occurred_at"`
}

// NewContentEvent creates a ContentEvent of the given type stamped with a
// fresh ID and the current time.
func NewContentEvent(eventType Type, sessionKey string) *ContentEvent {
	return &ContentEvent{
		ID:         uuid.New(),
		Type:       eventType,
		SessionKey: sessionKey,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ContentEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ContentEvent) error
}
