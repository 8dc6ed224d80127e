// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package live fans saved board states out to websocket watchers.
// The hub keeps the latest payload so a newly connected watcher sees
// the current board immediately instead of waiting for the next save.
package live
