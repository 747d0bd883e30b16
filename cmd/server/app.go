package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/inspiro-ai/inspiro-api/internal/events"
	"github.com/inspiro-ai/inspiro-api/internal/generation"
	"github.com/inspiro-ai/inspiro-api/internal/platform/gemini"
	"github.com/inspiro-ai/inspiro-api/internal/service"
	"github.com/inspiro-ai/inspiro-api/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator      generation.Generator
	tracker        *session.Tracker
	eventEmitter   *events.InMemoryEventEmitter
	contentService service.ContentService
}

// newGenerator creates the Gemini-backed generator. A missing API key is
// fatal here, before the server starts listening.
func newGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error) {
	generator, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")
	return generator, nil
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, generator generation.Generator) (*application, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	app := &application{
		config:       cfg,
		logger:       logger,
		generator:    generator,
		tracker:      session.NewTracker(),
		eventEmitter: events.NewInMemoryEventEmitter(logger),
	}

	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	var err error
	app.contentService, err = service.NewContentService(app.generator, app.tracker, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns when ctx is cancelled and the server has shut down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if n := app.tracker.Active(); n > 0 {
		app.logger.Warn("Requests still tracked at shutdown", "active_sessions", n)
	}
	app.logger.Info("Application shutdown completed")
}
