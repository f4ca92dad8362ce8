package main

import (
	"io"
	"os"

	"github.com/matsen/citegraph/internal/citegraph"
	"github.com/matsen/citegraph/internal/explore"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var exploreTargets exportTargets

func init() {
	exploreCmd.Flags().StringVar(&exploreTargets.HTML, "html", "", "Write an interactive HTML graph to this file on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.JSON, "json", "", "Write the graph as JSON to this file on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.JSONL, "jsonl", "", "Write one paper per line to this file on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.SQLite, "sqlite", "", "Write the graph to this SQLite database on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.BibTeX, "bib", "", "Write the papers as BibTeX to this file on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.DOT, "dot", "", "Write the graph in Graphviz DOT format to this file on exit")
	exploreCmd.Flags().StringVar(&exploreTargets.Layout, "layout", "tree", "HTML layout: tree, circle, or grid")
	rootCmd.AddCommand(exploreCmd)
}

var exploreCmd = &cobra.Command{
	Use:   "explore [term]...",
	Short: "Interactively grow a citation graph from a seed paper",
	Long: `Interactively grow a citation graph from a seed paper.

Searches Google Scholar for the term (prompting for one if none is given),
lists the results and asks which to use as the seed. Then, repeatedly, prints
the graph and asks for a node to expand; expanding fetches the papers citing
that node and adds them one level further out. Enter an empty line or press
Ctrl-D to finish.

Expansion failures (rate limiting, CAPTCHA pages) are reported and the session
continues. Exports are written when the session ends.

Examples:
  citegraph explore phylogenetic inference
  citegraph explore --html graph.html --sqlite graph.db
  citegraph explore tree space --dot graph.dot --bib graph.bib`,
	RunE: runExplore,
}

// ExploreResult is the JSON summary printed when a session ends.
type ExploreResult struct {
	Papers           int            `json:"papers"`
	LevelPopulations []int          `json:"level_populations"`
	Exports          []ExportResult `json:"exports"`
}

// sessionOutput is where prompts and graph listings go. When stdout is
// redirected they move to stderr so stdout carries only the final summary.
func sessionOutput() io.Writer {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return os.Stdout
	}
	return os.Stderr
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg := mustLoadGlobalConfig()

	targets := exploreTargets
	if err := targets.validate(); err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	term := searchTerm(args)
	targets.Title = term

	graph := citegraph.New(
		citegraph.WithStrict(strictMode || cfg.Strict),
		citegraph.WithWarnings(os.Stderr),
	)
	session := explore.New(newClient(cfg),
		explore.WithGraph(graph),
		explore.WithInput(os.Stdin),
		explore.WithOutput(sessionOutput()),
		explore.WithWarnings(os.Stderr),
	)

	if err := session.Run(cmd.Context(), term); err != nil {
		exitWithFetchError("", err)
	}

	snap := graph.Snapshot()
	if targets.Title == "" && len(snap.Nodes) > 0 {
		targets.Title = snap.Nodes[0].Title
	}

	var exports []ExportResult
	if len(snap.Nodes) > 0 {
		var err error
		exports, err = targets.write(snap)
		if err != nil {
			exitWithError(ExitError, "exporting graph: %v", err)
		}
	}

	if humanOutput {
		outputHuman("%d papers, levels %v\n", len(snap.Nodes), snap.LevelPopulations)
		for _, e := range exports {
			outputHuman("Wrote %s to %s\n", e.Format, e.Path)
		}
		return nil
	}
	if exports == nil {
		exports = []ExportResult{}
	}
	return outputJSON(ExploreResult{
		Papers:           len(snap.Nodes),
		LevelPopulations: snap.LevelPopulations,
		Exports:          exports,
	})
}
