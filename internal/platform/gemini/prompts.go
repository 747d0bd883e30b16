package gemini

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/inspiro-ai/inspiro-api/internal/generation"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// loadTemplate parses the override at path when set, otherwise the embedded
// template with the given name.
func loadTemplate(name, path string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, path, err)
		}
	} else {
		content, err = promptFS.ReadFile("prompts/" + name + ".tmpl")
		if err != nil {
			return nil, fmt.Errorf("%w: missing built-in prompt %s: %v",
				generation.ErrInvalidConfig, name, err)
		}
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template %s: %v",
			generation.ErrInvalidConfig, name, err)
	}
	return tmpl, nil
}

// renderPrompt executes tmpl with data and trims the result.
func (g *GeminiGenerator) renderPrompt(ctx context.Context, tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	prompt := strings.TrimSpace(buf.String())
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "Prompt generated successfully",
		"template_name", tmpl.Name(),
		"prompt_length", len(prompt))

	return prompt, nil
}
