// Package export renders citation graph papers as BibTeX.
package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/matsen/citegraph/internal/citegraph"
)

// ToBibTeX converts one paper to a @misc entry keyed by its Scholar ID.
func ToBibTeX(n citegraph.SnapshotNode) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@misc{%s,\n", n.ID))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(html.UnescapeString(n.Title))))

	// Year (optional)
	if n.Year != 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", n.Year))
	}

	b.WriteString(fmt.Sprintf("  note = {Google Scholar %s; citation level %d},\n", n.ID, n.Level))

	// Cited-by page (optional)
	if n.CitedByURL != "" {
		b.WriteString(fmt.Sprintf("  howpublished = {\\url{%s}},\n", n.CitedByURL))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts every paper in snap, in graph order.
func ToBibTeXList(snap citegraph.Snapshot) string {
	var entries []string
	for _, n := range snap.Nodes {
		entries = append(entries, ToBibTeX(n))
	}
	return strings.Join(entries, "\n")
}

// WriteBibTeX writes the BibTeX for snap to path.
func WriteBibTeX(path string, snap citegraph.Snapshot) error {
	if err := os.WriteFile(path, []byte(ToBibTeXList(snap)), 0644); err != nil {
		return fmt.Errorf("writing BibTeX: %w", err)
	}
	return nil
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
