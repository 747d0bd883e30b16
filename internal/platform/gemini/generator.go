package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/inspiro-ai/inspiro-api/internal/domain"
	"github.com/inspiro-ai/inspiro-api/internal/generation"
	"google.golang.org/genai"
)

// explainTemperature keeps word explanations factual regardless of the
// creative temperature configured for generation.
const explainTemperature = 0.3

// modelClient is the subset of *genai.Models the generator uses.
type modelClient interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues GenerateContent calls
	models modelClient

	// model is the name of the Gemini model to use
	model string

	temperature    float32
	requestTimeout time.Duration

	generateTemplate *template.Template
	explainTemplate  *template.Template
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGenerator creates a GeminiGenerator from configuration.
//
// It fails fast with generation.ErrInvalidConfig when the API key or model
// name is missing or a prompt override cannot be loaded. No network call is
// made during construction.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	logger.InfoContext(ctx, "Initializing Gemini generator", "model", cfg.ModelName)

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, cfg, client.Models)
}

// newGenerator wires a generator around an existing model client.
func newGenerator(logger *slog.Logger, cfg config.LLMConfig, models modelClient) (*GeminiGenerator, error) {
	generateTemplate, err := loadTemplate("generate", cfg.GeneratePromptPath)
	if err != nil {
		return nil, err
	}
	explainTemplate, err := loadTemplate("explain", cfg.ExplainPromptPath)
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{
		logger:           logger,
		models:           models,
		model:            cfg.ModelName,
		temperature:      float32(cfg.Temperature),
		requestTimeout:   time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		generateTemplate: generateTemplate,
		explainTemplate:  explainTemplate,
	}, nil
}

// validateConfig checks the settings the generator cannot run without.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name", "error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.RequestTimeoutSeconds < 0 {
		logger.WarnContext(ctx, "Invalid RequestTimeoutSeconds value",
			"value", cfg.RequestTimeoutSeconds,
			"action", "no timeout applied")
	}

	return nil
}

// Generate writes a poem or essay for req using a single Gemini call.
func (g *GeminiGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	prompt, err := g.renderPrompt(ctx, g.generateTemplate, generatePromptData{
		Topic:     req.Topic,
		Format:    string(req.Format),
		Tone:      string(req.Tone),
		Style:     string(req.Style),
		WordCount: req.WordCount,
		Language:  string(req.Language),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	return g.call(ctx, "generate", prompt, g.temperature).Unpack()
}

// Explain describes req.Word as used in req.SurroundingText using a single
// Gemini call.
func (g *GeminiGenerator) Explain(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	word := domain.NormalizeWord(req.Word)
	if word == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, domain.ErrEmptyWord)
	}

	language := req.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	prompt, err := g.renderPrompt(ctx, g.explainTemplate, explainPromptData{
		Word:            word,
		Language:        string(language),
		SurroundingText: req.SurroundingText,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	return g.call(ctx, "explain", prompt, explainTemperature).Unpack()
}

// call issues one GenerateContent request and validates the response.
func (g *GeminiGenerator) call(ctx context.Context, operation, prompt string, temperature float32) generation.Result {
	if g.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.requestTimeout)
		defer cancel()
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"operation", operation,
		"model", g.model)

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call error",
			"operation", operation,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return generation.Failed(fmt.Errorf("%w: %v", generation.ErrServiceUnavailable, err))
	}

	result := interpretResponse(resp)
	if !result.OK() {
		g.logger.WarnContext(ctx, "Gemini API call returned no usable text",
			"operation", operation,
			"reason", result.Reason,
			"duration_ms", time.Since(start).Milliseconds())
		return result
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"operation", operation,
		"text_length", len(result.Text),
		"duration_ms", time.Since(start).Milliseconds())
	return result
}

// interpretResponse validates a GenerateContent response at the boundary.
func interpretResponse(resp *genai.GenerateContentResponse) generation.Result {
	if resp == nil {
		return generation.Failed(fmt.Errorf("%w: nil response", generation.ErrInvalidResponse))
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return generation.Failed(fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason))
	}

	if len(resp.Candidates) == 0 {
		return generation.Failed(fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse))
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return generation.Failed(fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse))
	}

	if candidate.FinishReason == genai.FinishReasonSafety {
		return generation.Failed(fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked))
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		text.WriteString(part.Text)
	}

	return generation.Succeeded(text.String())
}
