package main

import (
	"fmt"
	"os"

	"github.com/matsen/citegraph/internal/citegraph"
	"github.com/matsen/citegraph/internal/config"
	"github.com/matsen/citegraph/internal/export"
	"github.com/matsen/citegraph/internal/storage"
	"github.com/matsen/citegraph/internal/viz"
)

// exportTargets holds the output paths requested on the command line.
type exportTargets struct {
	HTML   string
	JSON   string
	JSONL  string
	SQLite string
	BibTeX string
	DOT    string
	Layout string
	Title  string
}

// ExportResult reports one written export file.
type ExportResult struct {
	Format string `json:"format"`
	Path   string `json:"path"`
}

// validate expands and checks every requested path before any work is done.
func (t *exportTargets) validate() error {
	for _, p := range []*string{&t.HTML, &t.JSON, &t.JSONL, &t.SQLite, &t.BibTeX, &t.DOT} {
		expanded, err := config.ValidateOutputPath(*p)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		*p = expanded
	}
	if t.Layout == "" {
		t.Layout = viz.DefaultOptions().Layout
	}
	for _, l := range viz.ValidLayouts {
		if l == t.Layout {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid layout %q (valid: %v)", config.ErrInvalidConfig, t.Layout, viz.ValidLayouts)
}

// write exports snap to every requested target, in a fixed order.
func (t exportTargets) write(snap citegraph.Snapshot) ([]ExportResult, error) {
	results := make([]ExportResult, 0)

	if t.HTML != "" {
		html, err := viz.GenerateHTML(viz.BuildGraph(snap), viz.HTMLOptions{Layout: t.Layout, Title: t.Title})
		if err != nil {
			return results, fmt.Errorf("generating HTML: %w", err)
		}
		if err := os.WriteFile(t.HTML, []byte(html), 0644); err != nil {
			return results, fmt.Errorf("writing HTML: %w", err)
		}
		results = append(results, ExportResult{Format: "html", Path: t.HTML})
	}

	if t.JSON != "" {
		if err := storage.WriteJSON(t.JSON, snap); err != nil {
			return results, err
		}
		results = append(results, ExportResult{Format: "json", Path: t.JSON})
	}

	if t.JSONL != "" {
		if err := storage.WriteJSONL(t.JSONL, snap); err != nil {
			return results, err
		}
		results = append(results, ExportResult{Format: "jsonl", Path: t.JSONL})
	}

	if t.SQLite != "" {
		if _, err := storage.WriteSQLite(t.SQLite, snap); err != nil {
			return results, fmt.Errorf("writing SQLite: %w", err)
		}
		results = append(results, ExportResult{Format: "sqlite", Path: t.SQLite})
	}

	if t.BibTeX != "" {
		if err := export.WriteBibTeX(t.BibTeX, snap); err != nil {
			return results, err
		}
		results = append(results, ExportResult{Format: "bibtex", Path: t.BibTeX})
	}

	if t.DOT != "" {
		if err := writeDOTFile(t.DOT, snap); err != nil {
			return results, err
		}
		results = append(results, ExportResult{Format: "dot", Path: t.DOT})
	}

	return results, nil
}

func writeDOTFile(path string, snap citegraph.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating DOT file: %w", err)
	}
	defer f.Close()

	if err := viz.WriteDOT(f, snap); err != nil {
		return fmt.Errorf("writing DOT: %w", err)
	}
	return f.Close()
}
