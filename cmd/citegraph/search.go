package main

import (
	"fmt"
	"os"

	"github.com/matsen/citegraph/internal/explore"
	"github.com/matsen/citegraph/internal/scholar"
	"github.com/spf13/cobra"
)

var searchSave string

func init() {
	searchCmd.Flags().StringVar(&searchSave, "save", "", "Also write the raw results page to this file")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Search Google Scholar and list the results",
	Long: `Fetch the Google Scholar results page for a term and list its papers.

Exits with code 3 if the page has no usable results and 4 if the page could
not be fetched.

Examples:
  citegraph search phylogenetic inference
  citegraph search "tree space" --human --save page.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadGlobalConfig()
	term := searchTerm(args)

	html, err := newClient(cfg).Fetch(cmd.Context(), scholar.SearchURL(term))
	if err != nil {
		exitWithFetchError(fmt.Sprintf("searching %q", term), err)
	}

	if searchSave != "" {
		if err := os.WriteFile(searchSave, []byte(html), 0644); err != nil {
			exitWithError(ExitError, "saving page: %v", err)
		}
	}

	records, err := scholar.NewParser(scholar.WithWarnings(os.Stderr)).ParsePage(html)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(records) == 0 {
		err := fmt.Errorf("%w for %q", explore.ErrNoResults, term)
		exitWithError(exitCodeFor(err), "%v", err)
	}

	outputRecords(records)
	return nil
}
