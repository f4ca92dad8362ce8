package scholar

import "strings"

const (
	// Origin is prefixed to relative links scraped from result pages.
	Origin = "https://scholar.google.com/"

	// CitesPrefix marks an action-bar link that lists the papers citing a result.
	CitesPrefix = "/scholar?cites="

	searchURLPrefix = "https://scholar.google.com/scholar?hl=en&as_sdt=0%2C43&q="
	searchURLSuffix = "&btnG="
)

// SearchURL builds the Google Scholar search URL for a query.
// Spaces become '+'; every other character is embedded unescaped.
func SearchURL(term string) string {
	return searchURLPrefix + strings.ReplaceAll(term, " ", "+") + searchURLSuffix
}

// CitedByURL turns a relative cites link into an absolute URL.
// The href is appended to Origin as-is, so the result carries a double slash.
func CitedByURL(href string) string {
	return Origin + href
}
