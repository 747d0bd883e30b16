package gemini

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/inspiro-ai/inspiro-api/internal/domain"
	"github.com/inspiro-ai/inspiro-api/internal/generation"
	"github.com/inspiro-ai/inspiro-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records GenerateContent calls and replays a canned response.
type fakeModels struct {
	mu      sync.Mutex
	resp    *genai.GenerateContentResponse
	err     error
	prompts []string
	temps   []float32
	models  []string
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompts = append(f.prompts, p.Text)
		}
	}
	if cfg != nil && cfg.Temperature != nil {
		f.temps = append(f.temps, *cfg.Temperature)
	}
	f.models = append(f.models, model)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.resp, f.err
}

func (f *fakeModels) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.models)
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      content,
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey: "test-api-key",
		ModelName:    "test-model",
		Temperature:  0.9,
	}
}

func newTestGenerator(t *testing.T, models modelClient) *GeminiGenerator {
	t.Helper()
	l, _ := logger.NewCapture()
	g, err := newGenerator(l, testConfig(), models)
	require.NoError(t, err)
	return g
}

func mustRequest(t *testing.T, p domain.GenerationParams) domain.GenerationRequest {
	t.Helper()
	req, err := domain.NewGenerationRequest(p)
	require.NoError(t, err)
	return req
}

func TestNewGenerator_ConfigValidation(t *testing.T) {
	t.Parallel()

	l, _ := logger.NewCapture()

	tests := []struct {
		name   string
		mutate func(*config.LLMConfig)
	}{
		{"missing api key", func(c *config.LLMConfig) { c.GeminiAPIKey = "" }},
		{"missing model", func(c *config.LLMConfig) { c.ModelName = "" }},
		{"unreadable prompt override", func(c *config.LLMConfig) {
			c.GeneratePromptPath = filepath.Join(os.TempDir(), "no-such-dir", "generate.tmpl")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			tc.mutate(&cfg)

			g, err := NewGenerator(context.Background(), l, cfg)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
			assert.NotContains(t, err.Error(), "test-api-key")
		})
	}
}

func TestNewGenerator_NilLogger(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), nil, testConfig())
	assert.Error(t, err)
}

func TestNewGenerator_Success(t *testing.T) {
	t.Parallel()

	l, _ := logger.NewCapture()
	g, err := NewGenerator(context.Background(), l, testConfig())
	require.NoError(t, err)
	assert.Equal(t, "test-model", g.model)
}

func TestPromptOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "generate.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Custom: {{.Topic}} as {{.Format}}"), 0o600))

	cfg := testConfig()
	cfg.GeneratePromptPath = path

	models := &fakeModels{resp: textResponse("ok")}
	l, _ := logger.NewCapture()
	g, err := newGenerator(l, cfg, models)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), mustRequest(t, domain.GenerationParams{Topic: "tides"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom: tides as poem"}, models.prompts)
}

func TestPromptOverrideParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "explain.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Word"), 0o600))

	cfg := testConfig()
	cfg.ExplainPromptPath = path

	l, _ := logger.NewCapture()
	_, err := newGenerator(l, cfg, &fakeModels{})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("The sea remembers\n", "every shore.")}
	g := newTestGenerator(t, models)

	req := mustRequest(t, domain.GenerationParams{
		Topic:     "the sea",
		Format:    "poem",
		Tone:      "reflective",
		Style:     "narrative",
		WordCount: 150,
		Language:  "korean",
	})

	text, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "The sea remembers\nevery shore.", text, "text should be returned verbatim")

	require.Equal(t, 1, models.calls(), "exactly one call, no retries")
	prompt := models.prompts[0]
	assert.Contains(t, prompt, `"the sea"`)
	assert.Contains(t, prompt, "reflective poem")
	assert.Contains(t, prompt, "narrative style")
	assert.Contains(t, prompt, "Korean")
	assert.Contains(t, prompt, "150 words")
	assert.Contains(t, prompt, "stanzas")
	assert.Equal(t, "test-model", models.models[0])
	assert.InDelta(t, 0.9, models.temps[0], 1e-6)
}

func TestGenerate_EssayPrompt(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("An essay.")}
	g := newTestGenerator(t, models)

	_, err := g.Generate(context.Background(), mustRequest(t, domain.GenerationParams{
		Topic:  "cities",
		Format: "essay",
	}))
	require.NoError(t, err)

	assert.Contains(t, models.prompts[0], "paragraphs")
	assert.NotContains(t, models.prompts[0], "stanzas")
}

func TestGenerate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		models    *fakeModels
		wantCause error
	}{
		{
			name:      "transport error",
			models:    &fakeModels{err: errors.New("connection reset by peer")},
			wantCause: generation.ErrServiceUnavailable,
		},
		{
			name:      "nil response",
			models:    &fakeModels{},
			wantCause: generation.ErrInvalidResponse,
		},
		{
			name:      "no candidates",
			models:    &fakeModels{resp: &genai.GenerateContentResponse{}},
			wantCause: generation.ErrInvalidResponse,
		},
		{
			name: "nil content",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			}},
			wantCause: generation.ErrInvalidResponse,
		},
		{
			name:      "blank text",
			models:    &fakeModels{resp: textResponse("  ", "\n")},
			wantCause: generation.ErrInvalidResponse,
		},
		{
			name: "safety block",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content:      &genai.Content{Parts: []*genai.Part{{Text: "partial"}}},
					FinishReason: genai.FinishReasonSafety,
				}},
			}},
			wantCause: generation.ErrContentBlocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := newTestGenerator(t, tc.models)
			text, err := g.Generate(context.Background(), mustRequest(t, domain.GenerationParams{Topic: "storms"}))

			assert.Empty(t, text, "a failure never returns text")
			assert.ErrorIs(t, err, generation.ErrGenerationFailed)
			assert.ErrorIs(t, err, tc.wantCause)
			assert.Equal(t, 1, tc.models.calls(), "failures are not retried")
		})
	}
}

func TestGenerate_InvalidRequestSkipsCall(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("unused")}
	g := newTestGenerator(t, models)

	_, err := g.Generate(context.Background(), domain.GenerationRequest{})
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, domain.ErrEmptyTopic)
	assert.Zero(t, models.calls())
}

func TestGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, &fakeModels{resp: textResponse("late")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, mustRequest(t, domain.GenerationParams{Topic: "dusk"}))
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, generation.ErrServiceUnavailable)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("Joy is a noun meaning great happiness.")}
	g := newTestGenerator(t, models)

	text, err := g.Explain(context.Background(), domain.ExplanationRequest{
		Word:            "joy!",
		Language:        domain.LanguageJapanese,
		SurroundingText: "Pure joy! fills the air",
	})
	require.NoError(t, err)
	assert.Equal(t, "Joy is a noun meaning great happiness.", text)

	prompt := models.prompts[0]
	assert.Contains(t, prompt, `"joy"`, "word should be sent without punctuation")
	assert.NotContains(t, prompt, `"joy!"`)
	assert.Contains(t, prompt, "Japanese")
	assert.Contains(t, prompt, "Pure joy! fills the air")
	assert.InDelta(t, explainTemperature, models.temps[0], 1e-6)
}

func TestExplain_Failures(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t, &fakeModels{err: errors.New("503 Service Unavailable")})

	_, err := g.Explain(context.Background(), domain.ExplanationRequest{Word: "ember"})
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)

	_, err = g.Explain(context.Background(), domain.ExplanationRequest{Word: "!!"})
	assert.ErrorIs(t, err, domain.ErrEmptyWord)
}

func TestExplain_WithoutSurroundingText(t *testing.T) {
	t.Parallel()

	models := &fakeModels{resp: textResponse("An explanation.")}
	g := newTestGenerator(t, models)

	_, err := g.Explain(context.Background(), domain.ExplanationRequest{Word: "ember"})
	require.NoError(t, err)
	assert.NotContains(t, models.prompts[0], `"""`)
	assert.Contains(t, models.prompts[0], "English", "blank language defaults to English")
}
