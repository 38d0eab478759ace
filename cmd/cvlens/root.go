package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dnovais/cvlens"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cvlens",
	Short: "Analyze resume documents",
	Long: `cvlens parses resume files (PDF or plain text) into a structured model:
sections, contact details, categorized skills with confidence scores, and a
composite quality score with improvement recommendations.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig builds the analyzer configuration from the --config flag, the
// environment, and defaults, in that order of precedence.
func loadConfig() (cvlens.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "error", err)
	}

	cfg := cvlens.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = cvlens.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
	}
	if v := os.Getenv("CVLENS_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	return cfg, nil
}
