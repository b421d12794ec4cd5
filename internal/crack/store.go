package crack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the durable home of recovered digest -> plaintext pairs.
// Save is additive: a digest already present keeps its original
// plaintext regardless of what a later run claims for it.
type Store interface {
	Load() (map[string]string, error)
	Save(found map[string]string) error
	Close() error
}

// TextStore persists results to the plain "digest plaintext" line format.
type TextStore struct {
	path string
}

// NewTextStore returns a Store backed by the cache file at path.
func NewTextStore(path string) *TextStore { return &TextStore{path: path} }

func (s *TextStore) Load() (map[string]string, error) { return LoadCache(s.path) }

func (s *TextStore) Save(found map[string]string) error {
	existing, err := LoadCache(s.path)
	if err != nil {
		return err
	}
	MergeCache(existing, found)
	return SaveCache(s.path, existing)
}

func (s *TextStore) Close() error { return nil }

const storeSchema = `
CREATE TABLE IF NOT EXISTS recovered (
	digest    TEXT PRIMARY KEY,
	plaintext TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	id        TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL,
	attempts  INTEGER NOT NULL,
	found     INTEGER NOT NULL,
	started   TIMESTAMP NOT NULL,
	finished  TIMESTAMP NOT NULL
);
`

// SQLStore persists results to a SQLite database instead of the text
// cache, and additionally records per-run statistics.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if needed) the result database at path.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping result database: %w", err)
	}

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT digest, plaintext FROM recovered`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recovered digests: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]string)
	for rows.Next() {
		var digest, plaintext string
		if err := rows.Scan(&digest, &plaintext); err != nil {
			return nil, fmt.Errorf("failed to scan recovered row: %w", err)
		}
		cache[digest] = plaintext
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recovered rows: %w", err)
	}
	return cache, nil
}

func (s *SQLStore) Save(found map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// OR IGNORE keeps the first plaintext ever written for a digest.
	insert := `INSERT OR IGNORE INTO recovered (digest, plaintext) VALUES (?, ?)`
	for digest, plaintext := range found {
		if _, err := tx.Exec(insert, digest, plaintext); err != nil {
			return fmt.Errorf("failed to insert recovered digest: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RecordRun stores the outcome of one run under its UUID. An empty
// runID gets a fresh one; the used ID is returned either way.
func (s *SQLStore) RecordRun(runID, algorithm string, attempts uint64, found int, started, finished time.Time) (string, error) {
	if runID == "" {
		runID = uuid.New().String()
	}

	insert := `INSERT INTO runs (id, algorithm, attempts, found, started, finished) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.db.Exec(insert, runID, algorithm, int64(attempts), found, started, finished); err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return runID, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
