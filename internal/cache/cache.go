// Package cache persists the last-known configuration document so the page
// survives network failures with the user's content instead of placeholder
// defaults.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/amore-wedding/invite/internal/wedding"
)

// entryKey namespaces the single cached document.
const entryKey = "amore_wedding_data"

// Store is a sqlite-backed single-entry document store.
type Store struct {
	db *sql.DB
}

// Open creates or opens the store at path, creating parent directories as
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	// WAL for concurrent readers, busy timeout so the update entry point and
	// the resolver never trip over each other.
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to cache: %w", err)
	}
	db.SetMaxOpenConns(2)

	const schema = `CREATE TABLE IF NOT EXISTS config_cache (
		name       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save serializes doc and replaces the cached entry.
func (s *Store) Save(doc wedding.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing configuration: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO config_cache (name, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		entryKey, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	return nil
}

// Load returns the cached document as an override, or (nil, nil) when no
// entry exists. A stored entry that no longer parses is an error; callers
// discard it and continue with defaults.
func (s *Store) Load() (*wedding.Override, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM config_cache WHERE name = ?`, entryKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	var ov wedding.Override
	if err := json.Unmarshal([]byte(payload), &ov); err != nil {
		return nil, fmt.Errorf("parsing cached configuration: %w", err)
	}
	return &ov, nil
}

// Discard drops the cached entry. Used to self-heal after a corrupted read.
func (s *Store) Discard() error {
	_, err := s.db.Exec(`DELETE FROM config_cache WHERE name = ?`, entryKey)
	if err != nil {
		return fmt.Errorf("discarding configuration: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
