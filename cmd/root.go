// Package cmd provides CLI commands for metagen.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datalakes/metagen/config"
)

var configFile string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() config.Config {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		slog.Warn("using default configuration", "error", err)
	}
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "metagen",
	Short: "Collect and assemble dataset metadata for DataCite",
	Long: `Metagen guides dataset submitters through a metadata questionnaire,
verifies researcher and institution identifiers against the public ORCID
and ROR registries, and assembles a DataCite-shaped JSON document ready
for DOI registration.

Examples:
  metagen generate
  metagen generate -o ./metadata_output
  metagen convert -i record.yaml -o datacite.json
  metagen validate -i record.yaml
  metagen lookup orcid Jane Doe
  metagen lookup ror "Eawag"`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: "+config.DefaultPath()+")")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lookupCmd)
}
