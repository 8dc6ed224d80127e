// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the scoreboard store.

# Handler Types

The single handler struct carries database, config, and hub
dependencies:

	scoreboardHandler := handlers.NewScoreboardHandler(db, cfg, hub)

# Save Flow

	POST / → SaveState

Ongoing payloads overwrite the last-saved record and are broadcast to
watchers. Finished payloads get a play date backfilled when missing,
are archived under a name derived from that date, and are never
broadcast.

# Retrieval Flow

	GET /                     → last-saved ongoing board
	GET /?request=list        → finished-game record names
	GET /?request=load&file=X → one finished-game record

An empty store returns {"players":[]} so a fresh page renders default
players. Load requests are validated against the finished-game prefix
before touching the store.

# Live Updates

	GET /watch → Watch

Upgrades to a websocket fed by the hub; returns 503 when the hub is
disabled.
*/
package handlers
