// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the scoreboard store.

# Route Registration

NewRouter creates a configured handler with all endpoints, wrapped in
CORS handling for the browser pages:

	handler := router.NewRouter(db, cfg, hub)

# Endpoints

Health:

	GET /health

State (same URL the scoreboard pages post to):

	POST /                      - Save ongoing or finished state
	GET  /                      - Load last-saved ongoing state
	GET  /?request=list         - List finished-game records
	GET  /?request=load&file=X  - Load one finished-game record

Live updates:

	GET /watch - Websocket feed of ongoing saves

# Handler Initialization

The router creates the handler instance with dependency injection:

	scoreboardHandler := handlers.NewScoreboardHandler(db, cfg, hub)
*/
package router
