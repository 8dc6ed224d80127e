// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/hinolugi/scoreboard/config"
	"github.com/hinolugi/scoreboard/handlers"
	"github.com/hinolugi/scoreboard/live"
	"github.com/hinolugi/scoreboard/middleware"
)

func NewRouter(db *sql.DB, cfg config.Config, hub *live.Hub) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreboardHandler := handlers.NewScoreboardHandler(db, cfg, hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// State save and retrieval, same endpoint as the browser app uses
	mux.HandleFunc("POST /{$}", middleware.WithLogging(scoreboardHandler.SaveState))
	mux.HandleFunc("GET /{$}", middleware.WithLogging(scoreboardHandler.GetState))

	// Live updates for spectating clients
	mux.HandleFunc("GET /watch", scoreboardHandler.Watch)

	return middleware.CORS(mux)
}
