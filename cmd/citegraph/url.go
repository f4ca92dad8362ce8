package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/matsen/citegraph/internal/clipboard"
	"github.com/matsen/citegraph/internal/scholar"
	"github.com/spf13/cobra"
)

// URLResult is the JSON output for citegraph url.
type URLResult struct {
	Term   string `json:"term"`
	URL    string `json:"url"`
	Copied bool   `json:"copied"` // true if --copy succeeded
}

// clipboardUnavailableMsg is the standard warning when clipboard is not available.
const clipboardUnavailableMsg = "clipboard unavailable (install wl-copy, xclip or xsel on Linux)"

var urlCopyFlag bool

func init() {
	urlCmd.Flags().BoolVar(&urlCopyFlag, "copy", false, "Copy URL to system clipboard")
	rootCmd.AddCommand(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url <term>...",
	Short: "Print the Google Scholar search URL for a term",
	Long: `Print the Google Scholar search URL for a term.

Multiple arguments are joined with spaces. Spaces become '+' and every other
character is passed through unescaped.

Examples:
  citegraph url phylogenetic inference
  citegraph url "bayesian phylogenetics" --human
  citegraph url tree space --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runURL,
}

// searchTerm joins command arguments into a single search term.
func searchTerm(args []string) string {
	return strings.Join(args, " ")
}

func runURL(cmd *cobra.Command, args []string) error {
	term := searchTerm(args)
	url := scholar.SearchURL(term)

	copied := false
	if urlCopyFlag {
		if err := clipboard.Copy(url); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", clipboardUnavailableMsg, err)
		} else {
			copied = true
		}
	}

	if humanOutput {
		outputHuman("%s\n", url)
		if copied {
			outputHuman("(copied to clipboard)\n")
		}
		return nil
	}
	return outputJSON(URLResult{Term: term, URL: url, Copied: copied})
}
