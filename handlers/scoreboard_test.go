// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/store"
	"github.com/hinolugi/scoreboard/testutil"
)

func newTestHandler(t *testing.T) *ScoreboardHandler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewScoreboardHandler(db, testutil.GetTestConfig(), nil)
}

func TestSaveOngoingState(t *testing.T) {
	h := newTestHandler(t)

	body := []byte(`{"status": "ongoing", "auto-sort": true, "players": [{"name": "Ada", "score": 2}]}`)
	w := httptest.NewRecorder()
	h.SaveState(w, testutil.MakeRawRequest("POST", "/", body))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.SaveResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Filename != store.OngoingRecordName {
		t.Errorf("filename = %q, want %q", resp.Filename, store.OngoingRecordName)
	}

	// The saved payload comes back verbatim.
	w = httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != string(body) {
		t.Errorf("GetState = %s, want %s", got, body)
	}
}

func TestSaveFinishedStateDerivesFilename(t *testing.T) {
	h := newTestHandler(t)

	body := []byte(`{"status": "finished", "play-date": "2026-08-30T18:04:05.123Z", "players": []}`)
	w := httptest.NewRecorder()
	h.SaveState(w, testutil.MakeRawRequest("POST", "/", body))

	var resp models.SaveResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Filename != "final-scores-20260830T180405.json" {
		t.Errorf("filename = %q", resp.Filename)
	}

	// Finished records never clobber the ongoing session.
	w = httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/", nil))
	if !strings.Contains(w.Body.String(), `"players":[]`) {
		t.Errorf("ongoing default = %s", w.Body.String())
	}
}

func TestSaveFinishedStateBackfillsPlayDate(t *testing.T) {
	h := newTestHandler(t)

	body := []byte(`{"status": "finished", "players": []}`)
	w := httptest.NewRecorder()
	h.SaveState(w, testutil.MakeRawRequest("POST", "/", body))

	var resp models.SaveResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.HasPrefix(resp.Filename, store.FinishedPrefix) || resp.Filename == "final-scores-.json" {
		t.Fatalf("filename = %q, want a derived timestamp name", resp.Filename)
	}

	// The stored record carries the backfilled play-date.
	w = httptest.NewRecorder()
	req := testutil.MakeRawRequest("GET", "/?request=load&file="+resp.Filename, nil)
	h.GetState(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var stored map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &stored); err != nil {
		t.Fatalf("stored record is not JSON: %v", err)
	}
	if playDate, _ := stored["play-date"].(string); playDate == "" {
		t.Errorf("stored record missing backfilled play-date: %v", stored)
	}
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.SaveState(w, testutil.MakeRawRequest("POST", "/", []byte(`{broken`)))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	var envelope models.ErrorEnvelope
	testutil.AssertJSON(t, w, &envelope)
	if envelope.Status != "error" {
		t.Errorf("status = %q, want error", envelope.Status)
	}
}

func TestGetStateDefaultsWhenEmpty(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var doc map[string][]any
	testutil.AssertJSON(t, w, &doc)
	players, ok := doc["players"]
	if !ok || len(players) != 0 {
		t.Errorf("default = %v, want empty players array", doc)
	}
}

func TestListFinishedGames(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewScoreboardHandler(db, testutil.GetTestConfig(), nil)

	testutil.SeedRecord(t, db, "final-scores-20250101T000000.json", []byte(`{}`))
	testutil.SeedRecord(t, db, "final-scores-20260102T030405.json", []byte(`{}`))
	testutil.SeedRecord(t, db, store.OngoingRecordName, []byte(`{}`))

	w := httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/?request=list", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var names []string
	testutil.AssertJSON(t, w, &names)
	want := []string{
		"final-scores-20250101T000000.json",
		"final-scores-20260102T030405.json",
	}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("list = %v, want %v", names, want)
	}
}

func TestLoadFinishedGame(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewScoreboardHandler(db, testutil.GetTestConfig(), nil)

	record := []byte(`{"status": "finished", "players": [{"name": "Ada", "score": 9, "rank": 1}]}`)
	testutil.SeedRecord(t, db, "final-scores-20260102T030405.json", record)

	w := httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/?request=load&file=final-scores-20260102T030405.json", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != string(record) {
		t.Errorf("load = %s, want %s", got, record)
	}
}

func TestLoadFinishedGameValidation(t *testing.T) {
	h := newTestHandler(t)

	// Missing file parameter.
	w := httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/?request=load", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Wrong prefix must be rejected before any lookup.
	w = httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/?request=load&file=last-saved-scoreboard.json", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Valid prefix, missing record.
	w = httptest.NewRecorder()
	h.GetState(w, testutil.MakeRawRequest("GET", "/?request=load&file=final-scores-nope.json", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
	var envelope models.ErrorEnvelope
	testutil.AssertJSON(t, w, &envelope)
	if envelope.Status != "error" || !strings.Contains(envelope.Message, "final-scores-nope.json") {
		t.Errorf("envelope = %+v", envelope)
	}
}
