// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// OngoingRecordName holds the last-saved ongoing session.
const OngoingRecordName = "last-saved-scoreboard.json"

// FinishedPrefix prefixes every immutable finished-game record.
const FinishedPrefix = "final-scores-"

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CreateSchema creates all tables needed for the record store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- JSON blob records: the ongoing session plus finished-game snapshots
CREATE TABLE IF NOT EXISTS record (
    name TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);
`

// Store is the cloud-side key-value blob store over sqlite.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// PutRecord writes or overwrites a record.
func (s *Store) PutRecord(name string, payload []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO record (name, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, name, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("put record %q: %w", name, err)
	}
	return nil
}

// GetRecord returns a record's payload, or ErrNotFound.
func (s *Store) GetRecord(name string) ([]byte, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM record WHERE name = ?
	`, name).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", name, err)
	}
	return []byte(payload), nil
}

// ListRecords returns the names of all records with the given prefix,
// ordered by name. The timestamped finished-game names sort
// chronologically.
func (s *Store) ListRecords(prefix string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT name FROM record
		WHERE name LIKE ? || '%'
		ORDER BY name
	`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan record name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return names, nil
}
