package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"product.GO/config"
	"product.GO/core/logger"
)

var rootCmd = &cobra.Command{
	Use:           "product",
	Short:         "Describe the bundled catalog product with its current price",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd(), newSeedCmd())
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads configuration and installs the default logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	slog.SetDefault(logger.New(level, cfg.LogFormat))
	return cfg, nil
}
