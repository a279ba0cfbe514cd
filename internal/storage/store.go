// Package storage persists ledger records in a local SQLite database.
//
// The process opens one connection and shares it for its whole lifetime;
// every mutating call commits before returning. Dates are stored as
// ISO-8601 TEXT, event times as zero-padded HH:MM TEXT or NULL, and enum
// fields as their lowercase tags.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrMissingID is returned by Update calls on records that were never
// stored.
var ErrMissingID = errors.New("record has no id")

// Store owns the SQLite connection shared by all repositories.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating the file and its parent
// directories when missing, and applies pending migrations. The special
// path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// One connection for the process lifetime. SQLite allows a single
	// writer, and every extra connection to :memory: would be a
	// different database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the shared connection for repository constructors.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
