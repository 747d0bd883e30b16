package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/joho/godotenv"
)

// loadAppConfig loads envFile into the process environment (a missing file is
// fine) and then the application configuration.
func loadAppConfig(envFile string, opts config.Options) (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
