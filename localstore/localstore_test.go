// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstore

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	blob := []byte(`{"players": [{"name": "Ada", "score": 3]}}`)
	if err := s.Save(blob); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Load() = %s, want %s", got, blob)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save([]byte(`first`)); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Save([]byte(`second`)); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load() = %s, want second", got)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(); !errors.Is(err, ErrNoState) {
		t.Errorf("Load() error = %v, want ErrNoState", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open with a blank path must fail")
	}
}
