// Package main implements the entry point for the Inspiro API server, which
// writes poems and essays with a hosted language model and falls back to
// built-in templates when the model is unavailable.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/inspiro-ai/inspiro-api/internal/config"
	"github.com/spf13/cobra"
)

// options holds the command line flags.
type options struct {
	configFile string
	envFile    string
	port       int
	logLevel   string
}

// main is the entry point for the inspiro-api server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "inspiro-api:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "inspiro-api",
		Short:         "Serve the Inspiro content generation API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]any{}
			if cmd.Flags().Changed("port") {
				overrides["server.port"] = opts.port
			}
			if cmd.Flags().Changed("log-level") {
				overrides["server.log_level"] = opts.logLevel
			}
			return run(cmd.Context(), opts, overrides, out)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", os.Getenv(config.EnvPrefix+"_CONFIG"),
		"path to a YAML, JSON or TOML config file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().IntVar(&opts.port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// run loads configuration, wires the application and serves until ctx ends.
func run(ctx context.Context, opts *options, overrides map[string]any, out io.Writer) error {
	cfg, err := loadAppConfig(opts.envFile, config.Options{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg, out)
	if err != nil {
		return err
	}

	generator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize LLM generator", "error", err)
		return err
	}

	app, err := newApplication(cfg, logger, generator)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
