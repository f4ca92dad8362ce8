package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citegraph/internal/paper"
)

// TitleMaxLen bounds titles in human-readable record listings.
const TitleMaxLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecordsResponse is the JSON output for commands that list parsed records.
type RecordsResponse struct {
	Count   int            `json:"count"`
	Records []paper.Record `json:"records"`
}

// printRecordsHuman prints records as a numbered list.
func printRecordsHuman(records []paper.Record) {
	if len(records) == 0 {
		outputHuman("No results.\n")
		return
	}
	for i, r := range records {
		outputHuman("%d. %s  %s\n", i, r.ID, truncateString(r.Title, TitleMaxLen))
		if r.Year != 0 {
			outputHuman("   Year: %d\n", r.Year)
		}
		if r.Expandable() {
			outputHuman("   Cited by: %s\n", r.CitedByURL)
		}
	}
}

// outputRecords prints records as JSON or a human-readable list.
func outputRecords(records []paper.Record) {
	if humanOutput {
		printRecordsHuman(records)
		return
	}
	outputJSON(RecordsResponse{Count: len(records), Records: records})
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
