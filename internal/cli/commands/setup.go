// Package commands implements the sqldoc subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqldoc/internal/cli/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		Dialect:          getEnvOrDefault("SQLDOC_DIALECT", config.DefaultDialect),
		OutputDir:        getEnvOrDefault("SQLDOC_OUTPUT_DIR", config.DefaultOutputDir),
		Title:            getEnvOrDefault("SQLDOC_TITLE", config.DefaultTitle),
		Format:           getEnvOrDefault("SQLDOC_FORMAT", config.DefaultFormat),
		Diagram:          true,
		Indexes:          true,
		Strict:           os.Getenv("SQLDOC_STRICT") == "true",
		JunctionCoverage: 1,
		Verbose:          os.Getenv("SQLDOC_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
