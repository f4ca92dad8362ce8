package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matsen/citegraph/internal/citegraph"
	"github.com/matsen/citegraph/internal/config"
	"github.com/matsen/citegraph/internal/paper"
)

func testSnapshot(t *testing.T) citegraph.Snapshot {
	t.Helper()
	g := citegraph.New()
	if err := g.AddSeed(paper.Record{ID: paper.MustParseID("AAAAAAAAAAAA"), Title: "Foo", CitedByURL: "u"}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.ExpandRecords(0, []paper.Record{{ID: paper.MustParseID("BBBBBBBBBBBB"), Title: "Bar"}}); err != nil {
		t.Fatal(err)
	}
	return g.Snapshot()
}

func TestExportTargets_Validate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		targets exportTargets
		wantErr bool
	}{
		{name: "nothing requested", targets: exportTargets{}},
		{name: "all formats", targets: exportTargets{
			HTML:   filepath.Join(dir, "g.html"),
			JSON:   filepath.Join(dir, "g.json"),
			JSONL:  filepath.Join(dir, "g.jsonl"),
			SQLite: filepath.Join(dir, "g.db"),
			Layout: "circle",
		}},
		{name: "missing directory", targets: exportTargets{SQLite: filepath.Join(dir, "no", "g.db")}, wantErr: true},
		{name: "bad layout", targets: exportTargets{Layout: "force"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := tt.targets
			err := targets.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("validate() error = %v, want ErrInvalidConfig", err)
			}
			if err == nil && targets.Layout == "" {
				t.Error("validate() should default the layout")
			}
		})
	}
}

func TestExportTargets_Write(t *testing.T) {
	dir := t.TempDir()
	targets := exportTargets{
		HTML:   filepath.Join(dir, "g.html"),
		JSON:   filepath.Join(dir, "g.json"),
		JSONL:  filepath.Join(dir, "g.jsonl"),
		SQLite: filepath.Join(dir, "g.db"),
		BibTeX: filepath.Join(dir, "g.bib"),
		DOT:    filepath.Join(dir, "g.dot"),
		Title:  "foo search",
	}
	if err := targets.validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	results, err := targets.write(testSnapshot(t))
	if err != nil {
		t.Fatalf("write() error = %v", err)
	}

	var formats []string
	for _, r := range results {
		formats = append(formats, r.Format)
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("%s export missing: %v", r.Format, err)
		}
	}
	if want := []string{"html", "json", "jsonl", "sqlite", "bibtex", "dot"}; !reflect.DeepEqual(formats, want) {
		t.Errorf("formats = %v, want %v", formats, want)
	}

	html, _ := os.ReadFile(targets.HTML)
	if !strings.Contains(string(html), "foo search") {
		t.Error("HTML export should carry the title")
	}
	jsonl, _ := os.ReadFile(targets.JSONL)
	if lines := strings.Count(string(jsonl), "\n"); lines != 2 {
		t.Errorf("JSONL has %d lines, want 2", lines)
	}
}

func TestExportTargets_WriteNothing(t *testing.T) {
	results, err := exportTargets{}.write(testSnapshot(t))
	if err != nil {
		t.Fatalf("write() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("write() = %v, want no exports", results)
	}
}
