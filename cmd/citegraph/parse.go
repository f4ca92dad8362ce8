package main

import (
	"fmt"
	"os"

	"github.com/matsen/citegraph/internal/paper"
	"github.com/matsen/citegraph/internal/scholar"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.html>",
	Short: "Parse a saved Google Scholar results page",
	Long: `Parse a saved Google Scholar results or cited-by page and print its papers.

Results without a usable identifier are skipped with a warning on stderr.
A page with no results prints an empty list.

Examples:
  citegraph search "tree space" --save page.html
  citegraph parse page.html --human`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// parseFile reads a saved results page and extracts its records.
func parseFile(path string) ([]paper.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return scholar.NewParser(scholar.WithWarnings(os.Stderr)).ParsePage(string(data))
}

func runParse(cmd *cobra.Command, args []string) error {
	records, err := parseFile(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	outputRecords(records)
	return nil
}
