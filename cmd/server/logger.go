package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/inspiro-ai/inspiro-api/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
func setupAppLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server, out)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	if cfg.LLM.GeneratePromptPath != "" || cfg.LLM.ExplainPromptPath != "" {
		l.Debug("Prompt overrides configured",
			"generate_prompt_override", cfg.LLM.GeneratePromptPath != "",
			"explain_prompt_override", cfg.LLM.ExplainPromptPath != "")
	}

	return l, nil
}
