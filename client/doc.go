// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client talks to the cloud scoreboard store over HTTP.

# Operations

	c := client.New("https://example.com/scoreboard")

	filename, err := c.Save(ctx, export)        // POST state
	payload, err := c.Load(ctx)                 // GET last-saved board
	names, err := c.ListFinished(ctx)           // GET ?request=list
	payload, err := c.LoadFinished(ctx, name)   // GET ?request=load&file=...

Save and Load satisfy the session engine's remote interface, so a
Client can be handed straight to session.New.

# In-Flight Guards

Each control has its own guard: a second call while the previous one is
outstanding returns ErrRequestInFlight instead of issuing a duplicate
request. Guards are released on every return path, including failures.

# Errors

Error envelopes from the store ({"status":"error","message":...}) are
surfaced as Go errors regardless of the HTTP status code they arrive
with.
*/
package client
