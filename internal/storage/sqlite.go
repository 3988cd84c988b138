// Package storage provides SQLite-based persistence for game records and run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned by Get when no record exists for a namespace.
var ErrNotFound = errors.New("storage: record not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished run.
type RunEntry struct {
	ID        string
	Namespace string
	Elapsed   time.Duration
	Best      bool // Whether this run set a new best time
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			namespace TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			namespace TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			best INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(namespace, elapsed_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw record stored under namespace.
// Returns ErrNotFound if the namespace has no record.
func (s *Store) Get(namespace string) (string, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT data FROM records WHERE namespace = ?",
		namespace,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read record: %w", err)
	}
	return data, nil
}

// Put replaces the raw record stored under namespace in a single statement.
func (s *Store) Put(namespace, data string) error {
	_, err := s.db.Exec(
		`INSERT INTO records (namespace, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		namespace, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write record: %w", err)
	}
	return nil
}

// Delete removes the record stored under namespace. Missing records are not an error.
func (s *Store) Delete(namespace string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("storage: cannot delete record: %w", err)
	}
	return nil
}

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(namespace string, elapsed time.Duration, best bool) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, namespace, elapsed_ms, best) VALUES (?, ?, ?, ?)",
		id, namespace, elapsed.Milliseconds(), best,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// Runs retrieves the fastest N runs for the given namespace.
func (s *Store) Runs(namespace string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, namespace, elapsed_ms, best, created_at
		 FROM runs
		 WHERE namespace = ?
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		namespace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Namespace, &elapsedMs, &e.Best, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedMs) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunCount returns how many runs were recorded for namespace.
func (s *Store) RunCount(namespace string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE namespace = ?", namespace).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes the run history for namespace.
func (s *Store) ClearRuns(namespace string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
