package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inspiro-ai/inspiro-api/internal/domain"
	"github.com/inspiro-ai/inspiro-api/internal/events"
	"github.com/inspiro-ai/inspiro-api/internal/fallback"
	"github.com/inspiro-ai/inspiro-api/internal/generation"
	"github.com/inspiro-ai/inspiro-api/internal/platform/logger"
	"github.com/inspiro-ai/inspiro-api/internal/redact"
	"github.com/inspiro-ai/inspiro-api/internal/session"
)

// Source tells where the text of a result came from.
type Source string

const (
	// SourceGenerated marks text written by the generative service.
	SourceGenerated Source = "generated"
	// SourceFallback marks placeholder text from the fallback engine.
	SourceFallback Source = "fallback"
)

// Composition is the outcome of one generation request.
type Composition struct {
	ID     uuid.UUID
	Text   string
	Source Source

	// Sequence is the request's position within its session, 0 when untracked
	Sequence uint64

	Request   domain.GenerationRequest
	CreatedAt time.Time
}

// Explanation is the outcome of one word explanation request.
type Explanation struct {
	// Word is the normalized word that was explained
	Word   string
	Text   string
	Source Source
}

// ContentService provides content composition operations
type ContentService interface {
	// Compose writes a poem or essay for req. A generator failure is answered
	// with fallback text, so the only errors are validation failures,
	// ErrSuperseded when a newer request for sessionKey began meanwhile, and
	// the caller's context ending.
	Compose(ctx context.Context, sessionKey string, req domain.GenerationRequest) (*Composition, error)

	// Explain describes a single word. A generator failure is answered with the
	// built-in explanation for the word.
	Explain(ctx context.Context, sessionKey string, req domain.ExplanationRequest) (*Explanation, error)
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	generator    generation.Generator
	tracker      *session.Tracker
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewContentService creates a new ContentService
// It returns an error if any of the required dependencies are nil.
func NewContentService(
	generator generation.Generator,
	tracker *session.Tracker,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (ContentService, error) {
	switch {
	case generator == nil:
		return nil, &ContentServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	case tracker == nil:
		return nil, &ContentServiceError{Operation: "create_service", Message: "tracker cannot be nil"}
	case eventEmitter == nil:
		return nil, &ContentServiceError{Operation: "create_service", Message: "eventEmitter cannot be nil"}
	case logger == nil:
		return nil, &ContentServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	return &contentServiceImpl{
		generator:    generator,
		tracker:      tracker,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "content_service"),
	}, nil
}

// Compose implements ContentService.
func (s *contentServiceImpl) Compose(
	ctx context.Context,
	sessionKey string,
	req domain.GenerationRequest,
) (*Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger).With("session_key", sessionKey)

	reqCtx, ticket := s.tracker.Begin(ctx, sessionKey)
	defer ticket.Done()

	log.DebugContext(ctx, "composing content",
		"format", req.Format,
		"language", req.Language,
		"word_count", req.WordCount,
		"sequence", ticket.Sequence())

	text, genErr := s.generator.Generate(reqCtx, req)
	if genErr == nil {
		text, genErr = generation.Succeeded(text).Unpack()
	}

	if !ticket.Current() {
		log.InfoContext(ctx, "discarding superseded result", "sequence", ticket.Sequence())
		s.emit(ctx, s.composeEvent(events.ContentSuperseded, sessionKey, ticket, req, ""))
		return nil, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return nil, NewContentServiceError("compose", "request ended before completion", err)
	}

	composition := &Composition{
		ID:        uuid.New(),
		Text:      text,
		Source:    SourceGenerated,
		Sequence:  ticket.Sequence(),
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}

	if genErr != nil {
		reason := redact.Error(genErr)
		log.WarnContext(ctx, "generation failed, serving fallback content", "error", reason)
		composition.Text = fallback.Render(req)
		composition.Source = SourceFallback
		s.emit(ctx, s.composeEvent(events.ContentFallback, sessionKey, ticket, req, reason))
		return composition, nil
	}

	s.emit(ctx, s.composeEvent(events.ContentGenerated, sessionKey, ticket, req, ""))
	return composition, nil
}

// Explain implements ContentService. Explanations are ordered separately from
// compositions so opening a word does not cancel a pending poem.
func (s *contentServiceImpl) Explain(
	ctx context.Context,
	sessionKey string,
	req domain.ExplanationRequest,
) (*Explanation, error) {
	word := domain.NormalizeWord(req.Word)
	if word == "" {
		return nil, domain.NewValidationError("word", "is required", domain.ErrEmptyWord)
	}
	req.Word = word

	log := logger.FromContextOrDefault(ctx, s.logger).With("session_key", sessionKey)

	trackerKey := ""
	if sessionKey != "" {
		trackerKey = "explain:" + sessionKey
	}
	reqCtx, ticket := s.tracker.Begin(ctx, trackerKey)
	defer ticket.Done()

	text, genErr := s.generator.Explain(reqCtx, req)
	if genErr == nil {
		text, genErr = generation.Succeeded(text).Unpack()
	}

	if !ticket.Current() {
		event := events.NewContentEvent(events.ContentSuperseded, sessionKey)
		event.Sequence = ticket.Sequence()
		event.Language = string(req.Language)
		s.emit(ctx, event)
		return nil, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return nil, NewContentServiceError("explain", "request ended before completion", err)
	}

	explanation := &Explanation{Word: word, Text: text, Source: SourceGenerated}
	event := events.NewContentEvent(events.WordExplained, sessionKey)
	event.Sequence = ticket.Sequence()
	event.Language = string(req.Language)

	if genErr != nil {
		reason := redact.Error(genErr)
		log.WarnContext(ctx, "explanation failed, serving built-in text", "error", reason)
		explanation.Text = fallback.Explanation(word)
		explanation.Source = SourceFallback
		event.Type = events.WordFallback
		event.Reason = reason
	}

	s.emit(ctx, event)
	return explanation, nil
}

func (s *contentServiceImpl) composeEvent(
	eventType events.Type,
	sessionKey string,
	ticket *session.Ticket,
	req domain.GenerationRequest,
	reason string,
) *events.ContentEvent {
	event := events.NewContentEvent(eventType, sessionKey)
	event.Sequence = ticket.Sequence()
	event.Format = string(req.Format)
	event.Language = string(req.Language)
	event.Reason = reason
	return event
}

// emit publishes event; handler failures are logged and never fail the request.
func (s *contentServiceImpl) emit(ctx context.Context, event *events.ContentEvent) {
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).WarnContext(ctx, "failed to emit content event",
			"error", err,
			"event_type", event.Type)
	}
}
