package events

import (
	"context"
	"log/slog"
)

// LoggingHandler writes each event as one structured log line.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler writing to logger.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.With("component", "content_events")}
}

// HandleEvent implements EventHandler. Fallback and superseded outcomes are
// logged at warn level, the rest at info.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *ContentEvent) error {
	level := slog.LevelInfo
	switch event.Type {
	case ContentFallback, WordFallback, ContentSuperseded:
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.SessionKey != "" {
		attrs = append(attrs,
			slog.String("session_key", event.SessionKey),
			slog.Uint64("sequence", event.Sequence))
	}
	if event.Format != "" {
		attrs = append(attrs, slog.String("format", event.Format))
	}
	if event.Language != "" {
		attrs = append(attrs, slog.String("language", event.Language))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}

	h.logger.LogAttrs(ctx, level, "content event", attrs...)
	return nil
}
