package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/termimport/internal/terms"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS terms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	case_sensitive BOOLEAN DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(source)
)`

// Store wraps the SQLite connection holding the terms table.
type Store struct {
	db *sql.DB
}

// Row is a stored term with its database-assigned fields.
type Row struct {
	ID            int64
	Source        string
	Target        string
	CaseSensitive bool
	CreatedAt     time.Time
}

// Result tallies the outcome of a batch import.
type Result struct {
	Imported   int
	Duplicates int
	Failed     int
}

// Open opens (or creates) the SQLite database at path and ensures the terms
// table exists. An existing table is left untouched.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// A single connection keeps :memory: databases coherent and matches the
	// single-writer usage of this tool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create terms table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportTerms inserts the given terms in a single transaction. A term whose
// source already exists is silently skipped and counted as a duplicate;
// other per-row failures are logged and counted without aborting the batch.
func (s *Store) ImportTerms(batch []terms.Term) (Result, error) {
	var res Result

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("begin import: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO terms (source, target, case_sensitive) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return res, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range batch {
		sqlRes, err := stmt.Exec(t.Source, t.Target, t.CaseSensitive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to insert term %q: %v\n", t.Source, err)
			res.Failed++
			continue
		}
		n, err := sqlRes.RowsAffected()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to insert term %q: %v\n", t.Source, err)
			res.Failed++
			continue
		}
		if n > 0 {
			res.Imported++
		} else {
			// RowsAffected of 0 means the unique source constraint ignored the row.
			res.Duplicates++
		}
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit import: %w", err)
	}
	return res, nil
}

// CountTerms returns the number of stored terms.
func (s *Store) CountTerms() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM terms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	return n, nil
}

// GetTerm looks up a stored term by its source. It returns sql.ErrNoRows
// when the source is unknown.
func (s *Store) GetTerm(source string) (Row, error) {
	var row Row
	err := s.db.QueryRow(
		`SELECT id, source, target, case_sensitive, created_at FROM terms WHERE source = ?`,
		source,
	).Scan(&row.ID, &row.Source, &row.Target, &row.CaseSensitive, &row.CreatedAt)
	if err != nil {
		return Row{}, err
	}
	return row, nil
}
