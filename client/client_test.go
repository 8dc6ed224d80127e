// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/hinolugi/scoreboard/models"
)

func TestSaveReturnsFilename(t *testing.T) {
	var gotBody models.Export
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "success",
			"filename": "last-saved-scoreboard.json",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	export := models.Export{
		Status:  models.StatusOngoing,
		Players: []models.ExportPlayer{{Name: "Ada", Score: 12}},
	}
	filename, err := c.Save(context.Background(), export)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filename != "last-saved-scoreboard.json" {
		t.Errorf("expected stored filename, got %q", filename)
	}
	if len(gotBody.Players) != 1 || gotBody.Players[0].Name != "Ada" {
		t.Errorf("server did not receive the export: %+v", gotBody)
	}
}

func TestSaveRejectedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "Invalid JSON payload",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Save(context.Background(), models.Export{})
	if err == nil {
		t.Fatal("expected an error for a rejected save")
	}
}

func TestSaveGuardBlocksConcurrentRequests(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var enteredOnce sync.Once
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enteredOnce.Do(func() { close(entered) })
		<-release
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "filename": "x.json"})
	}))
	defer server.Close()

	c := New(server.URL)
	done := make(chan error, 1)
	go func() {
		_, err := c.Save(context.Background(), models.Export{})
		done <- err
	}()

	<-entered
	if _, err := c.Save(context.Background(), models.Export{}); !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("expected ErrRequestInFlight while a save is outstanding, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first save: %v", err)
	}

	// The guard must be released once the request completes.
	if _, err := c.Save(context.Background(), models.Export{}); err != nil {
		t.Fatalf("save after release: %v", err)
	}
}

func TestGuardReleasedAfterFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "boom"})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Save(context.Background(), models.Export{}); err == nil {
		t.Fatal("expected save to fail")
	}
	// A failed request must not leave the control disabled.
	if _, err := c.Save(context.Background(), models.Export{}); errors.Is(err, ErrRequestInFlight) {
		t.Fatal("guard was not released after a failed save")
	}
}

func TestLoadReturnsRawState(t *testing.T) {
	state := `{"status":"ongoing","players":[{"name":"Ada","score":3}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(state))
	}))
	defer server.Close()

	c := New(server.URL)
	payload, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(payload) != state {
		t.Errorf("expected stored state verbatim, got %s", payload)
	}
}

func TestListFinished(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("request") != "list" {
			t.Errorf("expected request=list, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]string{
			"final-scores-20260829T210000.json",
			"final-scores-20260830T180405.json",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	names, err := c.ListFinished(context.Background())
	if err != nil {
		t.Fatalf("ListFinished: %v", err)
	}
	if len(names) != 2 || names[1] != "final-scores-20260830T180405.json" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestLoadFinished(t *testing.T) {
	record := `{"status":"finished","players":[{"name":"Ada","score":60,"rank":1}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("request") != "load" || q.Get("file") != "final-scores-20260830T180405.json" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(record))
	}))
	defer server.Close()

	c := New(server.URL)
	payload, err := c.LoadFinished(context.Background(), "final-scores-20260830T180405.json")
	if err != nil {
		t.Fatalf("LoadFinished: %v", err)
	}
	if string(payload) != record {
		t.Errorf("expected record verbatim, got %s", payload)
	}
}

func TestLoadFinishedRejectsForeignName(t *testing.T) {
	c := New("http://unused.invalid")
	if _, err := c.LoadFinished(context.Background(), "../etc/passwd"); err == nil {
		t.Fatal("expected an error for a name outside the finished prefix")
	}
}

func TestErrorEnvelopeSurfacedOnLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "File not found: final-scores-x.json",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.LoadFinished(context.Background(), "final-scores-x.json")
	if err == nil {
		t.Fatal("expected an error for a missing record")
	}
}
