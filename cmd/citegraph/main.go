// Package main provides the citegraph CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/citegraph/internal/config"
	"github.com/matsen/citegraph/internal/scholar"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// strictMode enables warnings for cited-by pages that yield no papers
var strictMode bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citegraph",
	Short: "Explore Google Scholar citation graphs",
	Long: `citegraph grows a citation graph outward from a seed paper.

Search Google Scholar, pick a seed, then repeatedly choose a paper to pull in
the papers that cite it. The finished graph can be exported as an interactive
HTML page, JSON, JSONL or SQLite.

Settings are read from ~/.config/citegraph/config.yml and can be overridden
with CITEGRAPH_USER_AGENT, CITEGRAPH_RATE and CITEGRAPH_TIMEOUT (a .env file
in the working directory is loaded first).

Non-interactive commands output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for CITEGRAPH_* overrides)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Warn when a cited-by page yields no papers")
	rootCmd.Version = Version
}

// mustLoadGlobalConfig loads the global config, exits on error.
func mustLoadGlobalConfig() *config.GlobalConfig {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v\n\nConfig file: %s", err, config.GlobalConfigPath())
	}
	return cfg
}

// newClient builds a Scholar client from the global config.
func newClient(cfg *config.GlobalConfig) *scholar.Client {
	var opts []scholar.ClientOption
	if cfg.UserAgent != "" {
		opts = append(opts, scholar.WithUserAgent(cfg.UserAgent))
	}
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, scholar.WithRateLimit(cfg.RequestsPerSecond))
	}
	if cfg.Timeout() > 0 {
		opts = append(opts, scholar.WithTimeout(cfg.Timeout()))
	}
	return scholar.NewClient(opts...)
}
