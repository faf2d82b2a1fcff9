package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datalakes/metagen/format/datacite"
	"github.com/datalakes/metagen/record"
)

var (
	convertInput  string
	convertOutput string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a metadata record to a DataCite document",
	Long: `Convert a saved metadata record (YAML) to a DataCite JSON document.

Input defaults to stdin, output defaults to stdout.

Examples:
  metagen convert -i record.yaml -o datacite.json
  cat record.yaml | metagen convert --pretty`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input record file (default: stdin)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", true, "Pretty-print JSON output")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	rec, err := readRecord(convertInput)
	if err != nil {
		return err
	}

	var output io.Writer
	if convertOutput != "" {
		f, createErr := os.Create(convertOutput)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	if err := datacite.Serialize(output, rec, convertPretty); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}

// readRecord loads a metadata record from a YAML file, or stdin when
// path is empty.
func readRecord(path string) (*record.Record, error) {
	var input io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		input = f
	} else {
		input = os.Stdin
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	rec := record.New()
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}
	return rec, nil
}
