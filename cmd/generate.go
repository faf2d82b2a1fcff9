package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/datalakes/metagen/format/datacite"
	"github.com/datalakes/metagen/prompt"
	"github.com/datalakes/metagen/record"
)

var generateOutputDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the interactive metadata questionnaire",
	Long: `Walk through the metadata questionnaire on the terminal, with
ORCID and ROR lookups for people and institutions, then print the
assembled DataCite JSON document.

The document can optionally be saved as <prefix>_YYYY-MM-DD.json in
the output directory.

Examples:
  metagen generate
  metagen generate -o ./metadata_output`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Directory for saved documents (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	cfg := loadConfig()
	if generateOutputDir != "" {
		cfg.OutputDir = generateOutputDir
	}

	session := prompt.NewSession(os.Stdin, os.Stdout, cfg)
	rec := session.Run()

	report := record.Validate(rec)
	for _, w := range report.Warnings {
		slog.Warn("metadata warning", "field", w.Field, "message", w.Message)
	}
	if !report.IsValid() {
		for _, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "invalid metadata: %s\n", e.Error())
		}
		return fmt.Errorf("metadata validation failed: %w", report.Err())
	}

	fmt.Println("\nGENERATED METADATA\n---------------------------------")
	if err := datacite.Serialize(os.Stdout, rec, true); err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}

	prefix, save := session.ConfirmSave()
	if !save {
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.json", prefix, time.Now().Format("2006-01-02"))
	path := filepath.Join(cfg.OutputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := datacite.Serialize(f, rec, true); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	fmt.Printf("\nMetadata saved to %s\n", path)
	return nil
}
