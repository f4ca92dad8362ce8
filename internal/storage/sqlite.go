package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matsen/citegraph/internal/citegraph"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database holding an exported citation graph.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- One row per paper, keyed by its position in the graph
		CREATE TABLE IF NOT EXISTS papers (
			idx INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			year INTEGER,
			level INTEGER NOT NULL,
			cited_by_url TEXT,
			expanded INTEGER NOT NULL
		);

		-- cited_idx is cited by citer_idx
		CREATE TABLE IF NOT EXISTS citations (
			cited_idx INTEGER NOT NULL REFERENCES papers(idx),
			citer_idx INTEGER NOT NULL REFERENCES papers(idx),
			PRIMARY KEY (cited_idx, citer_idx)
		);

		CREATE INDEX IF NOT EXISTS idx_citations_citer ON citations(citer_idx);

		CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(
			id,
			title
		);
	`

	_, err := db.Exec(schema)
	return err
}

// WriteSnapshot replaces the database contents with snap in one transaction.
// It returns the number of papers written.
func (d *DB) WriteSnapshot(snap citegraph.Snapshot) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"citations", "papers", "papers_fts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	paperStmt, err := tx.Prepare(`
		INSERT INTO papers (idx, id, title, year, level, cited_by_url, expanded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing papers insert: %w", err)
	}
	defer paperStmt.Close()

	ftsStmt, err := tx.Prepare(`INSERT INTO papers_fts (id, title) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	citeStmt, err := tx.Prepare(`INSERT INTO citations (cited_idx, citer_idx) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing citations insert: %w", err)
	}
	defer citeStmt.Close()

	for _, n := range snap.Nodes {
		id := n.ID.String()
		_, err := paperStmt.Exec(
			n.Index, id, n.Title, nullableInt(n.Year), n.Level,
			nullableStringValue(n.CitedByURL), n.Expanded,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", id, err)
		}
		if _, err := ftsStmt.Exec(id, n.Title); err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", id, err)
		}
	}

	for _, e := range snap.Edges() {
		if _, err := citeStmt.Exec(e[0], e[1]); err != nil {
			return 0, fmt.Errorf("inserting citation %d->%d: %w", e[0], e[1], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(snap.Nodes), nil
}

// PaperRow is a paper as stored in the database.
type PaperRow struct {
	Index      int
	ID         string
	Title      string
	Year       int
	Level      int
	CitedByURL string
	Expanded   bool
}

const selectPaperFields = `idx, id, title, COALESCE(year, 0), level, COALESCE(cited_by_url, ''), expanded`

// Count returns the number of papers.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM papers").Scan(&count)
	return count, err
}

// GetCiters returns the papers citing the paper with the given ID, by index.
func (d *DB) GetCiters(id string) ([]PaperRow, error) {
	rows, err := d.db.Query(`
		SELECT `+selectPaperFields+`
		FROM papers
		WHERE idx IN (
			SELECT c.citer_idx FROM citations c
			JOIN papers p ON p.idx = c.cited_idx
			WHERE p.id = ?
		)
		ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("querying citers of %s: %w", id, err)
	}
	defer rows.Close()

	return scanPapers(rows)
}

// SearchTitles performs a full-text search over paper titles.
func (d *DB) SearchTitles(query string, limit int) ([]PaperRow, error) {
	rows, err := d.db.Query(`
		SELECT `+selectPaperFields+`
		FROM papers
		WHERE id IN (SELECT id FROM papers_fts WHERE papers_fts MATCH ?)
		ORDER BY idx
		LIMIT ?`, prepareFTSQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanPapers(rows)
}

// LevelPopulations counts papers per level, recomputed from the papers table.
func (d *DB) LevelPopulations() ([]int, error) {
	rows, err := d.db.Query(`SELECT level, COUNT(*) FROM papers GROUP BY level ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("counting levels: %w", err)
	}
	defer rows.Close()

	var pops []int
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		for len(pops) <= level {
			pops = append(pops, 0)
		}
		pops[level] = count
	}
	return pops, rows.Err()
}

func scanPapers(rows *sql.Rows) ([]PaperRow, error) {
	var papers []PaperRow
	for rows.Next() {
		var p PaperRow
		if err := rows.Scan(&p.Index, &p.ID, &p.Title, &p.Year, &p.Level, &p.CitedByURL, &p.Expanded); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// nullableInt converts an int to sql.NullInt64, treating zero as NULL.
func nullableInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// FTS5 uses double quotes for phrase matching
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
