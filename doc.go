// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the scoreboard cloud store.

The store keeps the last-saved ongoing game and an archive of finished
games for the scoreboard pages, and feeds live updates to spectating
clients over a websocket.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8080 -d scoreboard.db

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_PATH (-d): SQLite database file (default: scoreboard.db)

A .env file in the working directory is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for state save and retrieval
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: SQLite record persistence
  - live: Websocket hub for spectator updates
  - config: Configuration parsing

The session engine itself (session, scoring, ranking, codec, view,
localstore, client) is a library usable without the server.
*/
package main
