package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datalakes/metagen/lookup"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Query the identifier registries directly",
}

var lookupORCIDCmd = &cobra.Command{
	Use:   "orcid <first-name> <last-name>",
	Short: "Search the ORCID registry by name",
	Long: `Search the public ORCID registry for researchers matching a given
and family name and print the candidates.

Examples:
  metagen lookup orcid Jane Doe`,
	Args: cobra.ExactArgs(2),
	RunE: runLookupORCID,
}

var lookupRORCmd = &cobra.Command{
	Use:   "ror <name>",
	Short: "Search the ROR registry by institution name",
	Long: `Search the Research Organization Registry for institutions matching
a name and print the candidates.

Examples:
  metagen lookup ror "Eawag"
  metagen lookup ror Swiss Federal Institute`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookupROR,
}

func init() {
	lookupCmd.AddCommand(lookupORCIDCmd)
	lookupCmd.AddCommand(lookupRORCmd)
}

func runLookupORCID(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := lookup.NewORCIDClient(cfg.ORCID.BaseURL, cfg.ORCID.Timeout())
	if cfg.ORCID.MaxResults > 0 {
		client.MaxResults = cfg.ORCID.MaxResults
	}

	results := client.Search(args[0], args[1])
	if len(results) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %s\n", i+1, r.DisplayName)
		fmt.Printf("   ORCID iD: %s\n", r.ORCID)
		if r.Affiliation != "" {
			fmt.Printf("   Affiliation: %s\n", r.Affiliation)
		}
	}
	return nil
}

func runLookupROR(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := lookup.NewRORClient(cfg.ROR.BaseURL, cfg.ROR.Timeout())
	if cfg.ROR.MaxResults > 0 {
		client.MaxResults = cfg.ROR.MaxResults
	}

	results := client.Search(strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	for i, o := range results {
		fmt.Printf("%d. %s (%s)\n", i+1, o.Name, o.Country)
		fmt.Printf("   ROR ID: %s\n", o.ID)
		if len(o.Aliases) > 0 {
			fmt.Printf("   Also known as: %s\n", strings.Join(o.Aliases, ", "))
		}
	}
	return nil
}
