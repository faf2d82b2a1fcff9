package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datalakes/metagen/record"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a metadata record without converting",
	Long: `Validate a saved metadata record (YAML) and report any issues
found without producing a document. Useful for checking a record
before registration.

Input defaults to stdin.

Examples:
  metagen validate -i record.yaml
  cat record.yaml | metagen validate`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input record file (default: stdin)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rec, err := readRecord(validateInput)
	if err != nil {
		return err
	}

	report := record.Validate(rec)
	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w.Error())
	}
	if !report.IsValid() {
		for _, e := range report.Errors {
			fmt.Printf("error: %s\n", e.Error())
		}
		return fmt.Errorf("record is invalid: %w", report.Err())
	}

	fmt.Printf("✓ Valid: %s\n", rec.Title)
	return nil
}
