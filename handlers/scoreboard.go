// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hinolugi/scoreboard/codec"
	"github.com/hinolugi/scoreboard/config"
	"github.com/hinolugi/scoreboard/live"
	"github.com/hinolugi/scoreboard/middleware"
	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/store"
)

// maxBodySize bounds a save payload; a scoreboard is a few KB at most.
const maxBodySize = 1 << 20

type ScoreboardHandler struct {
	records *store.Store
	cfg     config.Config
	hub     *live.Hub
}

func NewScoreboardHandler(db *sql.DB, cfg config.Config, hub *live.Hub) *ScoreboardHandler {
	return &ScoreboardHandler{records: store.New(db), cfg: cfg, hub: hub}
}

// SaveState handles POST /
// An ongoing payload overwrites the last-saved record; a finished payload
// becomes a new immutable final-scores record named after its play date.
func (h *ScoreboardHandler) SaveState(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	filename := store.OngoingRecordName
	if status, _ := doc["status"].(string); status == models.StatusFinished {
		// Fall back in case no play-date was provided.
		playDate, _ := doc["play-date"].(string)
		if playDate == "" {
			playDate = time.Now().UTC().Format(codec.ISOMillis)
			doc["play-date"] = playDate
			if patched, err := json.Marshal(doc); err == nil {
				body = patched
			}
		}
		filename = codec.FinishedFilename(playDate)
	}

	if err := h.records.PutRecord(filename, body); err != nil {
		slog.Error("failed to store record", "error", err, "filename", filename)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store scoreboard")
		return
	}

	// Watchers follow the ongoing board only; finished records are
	// immutable history.
	if filename == store.OngoingRecordName && h.hub != nil {
		h.hub.Broadcast(body)
	}

	slog.Info("scoreboard saved", "filename", filename)
	middleware.JSONResponse(w, http.StatusOK, models.SaveResponse{
		Status:   "success",
		Filename: filename,
	})
}

// GetState handles GET /
// Dispatches on the request query parameter:
//
//	(none)       → last-saved ongoing session, or {"players":[]} if none
//	request=list → finished-game filenames
//	request=load&file=<name> → the named finished-game record
func (h *ScoreboardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("request") {
	case "list":
		h.listFinished(w, r)
	case "load":
		h.loadFinished(w, r)
	default:
		h.getOngoing(w, r)
	}
}

func (h *ScoreboardHandler) getOngoing(w http.ResponseWriter, r *http.Request) {
	payload, err := h.records.GetRecord(store.OngoingRecordName)
	if err == nil {
		middleware.RawJSONResponse(w, http.StatusOK, payload)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		// No saved session yet: documented default, not an error.
		middleware.JSONResponse(w, http.StatusOK, map[string]any{"players": []any{}})
		return
	}
	slog.Error("failed to load ongoing record", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load scoreboard")
}

func (h *ScoreboardHandler) listFinished(w http.ResponseWriter, r *http.Request) {
	names, err := h.records.ListRecords(store.FinishedPrefix)
	if err != nil {
		slog.Error("failed to list records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list finished games")
		return
	}

	filtered := []string{}
	for _, name := range names {
		if strings.HasSuffix(name, ".json") {
			filtered = append(filtered, name)
		}
	}
	middleware.JSONResponse(w, http.StatusOK, filtered)
}

func (h *ScoreboardHandler) loadFinished(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("file")
	if filename == "" || !strings.HasPrefix(filename, store.FinishedPrefix) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid or missing file name for 'load' request.")
		return
	}

	payload, err := h.records.GetRecord(filename)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "File not found: "+filename)
		return
	}
	if err != nil {
		slog.Error("failed to load record", "error", err, "filename", filename)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load finished game")
		return
	}
	middleware.RawJSONResponse(w, http.StatusOK, payload)
}

// Watch handles GET /watch, upgrading to a websocket that receives the
// ongoing board on every save.
func (h *ScoreboardHandler) Watch(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Live updates are not enabled")
		return
	}
	h.hub.ServeWS(w, r)
}
