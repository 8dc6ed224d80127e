// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "scoreboard"

// StateKey is the app+version-qualified key the live session is stored
// under. Bump the suffix when the persisted shape changes incompatibly.
const StateKey = "scoreboard.v2"

// ErrNoState indicates nothing has been saved yet.
var ErrNoState = errors.New("no saved state")

// Store is a BoltDB-backed local snapshot store; the scoreboard's
// equivalent of browser local storage.
type Store struct {
	db *bbolt.DB
}

// Open opens the store at the provided path, creating it if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save overwrites the persisted session blob.
func (s *Store) Save(data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("bucket is missing")
		}
		return bucket.Put([]byte(StateKey), data)
	})
}

// Load returns the persisted session blob, or ErrNoState.
func (s *Store) Load() ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("bucket is missing")
		}
		if raw := bucket.Get([]byte(StateKey)); raw != nil {
			data = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load local store: %w", err)
	}
	if data == nil {
		return nil, ErrNoState
	}
	return data, nil
}
