package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a local single-file key-value namespace, one row per logical key.
// It is the durable backing for the session and complaint stores: every
// mutation is a synchronous full-value rewrite of its key, so a read
// following a write always observes that write. The store is the only
// writer; there is no multi-process coordination.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the store file and ensures the kv table exists.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage file: %w", err)
	}

	// A single connection keeps writes strictly ordered.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping storage file: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ensureSchema creates the kv table if it does not exist yet
func (s *Store) ensureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS kv (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Get returns the value stored under name. The second return value is false
// when the key is absent.
func (s *Store) Get(name string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", name, err)
	}
	return []byte(value), true, nil
}

// Put writes value under name, replacing any previous value
func (s *Store) Put(name string, value []byte) error {
	query := `
		INSERT INTO kv (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, name, string(value)); err != nil {
		return fmt.Errorf("failed to write key %q: %w", name, err)
	}
	return nil
}

// Delete removes name from the store. Deleting an absent key is not an error.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", name, err)
	}
	return nil
}

// Keys returns all key names currently present, sorted
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM kv ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan key name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Snapshot writes every key's current value into a timestamped JSON file
// under dir and returns the file path. Values that are valid JSON are
// embedded as-is so snapshots stay human-readable.
func (s *Store) Snapshot(dir string) (string, error) {
	names, err := s.Keys()
	if err != nil {
		return "", err
	}

	out := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		value, ok, err := s.Get(name)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if json.Valid(value) {
			out[name] = json.RawMessage(value)
		} else {
			encoded, err := json.Marshal(string(value))
			if err != nil {
				return "", fmt.Errorf("failed to encode key %q: %w", name, err)
			}
			out[name] = json.RawMessage(encoded)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("deadline-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// Close closes the underlying store file
func (s *Store) Close() error {
	return s.db.Close()
}
