// Package storage exports citation graph snapshots to JSON, JSONL and SQLite.
//
// Exports are write-only: nothing in citegraph reads them back, and each
// session starts from an empty graph.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citegraph/internal/citegraph"
)

// WriteJSONL writes one snapshot node per line, in graph order.
func WriteJSONL(path string, snap citegraph.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating JSONL file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, n := range snap.Nodes {
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("encoding paper %s: %w", n.ID, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing JSONL file: %w", err)
	}
	return f.Close()
}

// WriteJSON writes the whole snapshot as one indented JSON document.
func WriteJSON(path string, snap citegraph.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// WriteSQLite exports snap to a SQLite database at path, replacing its contents.
func WriteSQLite(path string, snap citegraph.Snapshot) (int, error) {
	db, err := OpenDB(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	return db.WriteSnapshot(snap)
}
