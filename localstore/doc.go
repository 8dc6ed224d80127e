// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package localstore persists the working session to a local bbolt file.

The store keeps a single value under the key "scoreboard.v2", matching
the document the session engine writes after every mutation:

	ls, err := localstore.Open("scoreboard.local.db")
	if err != nil {
		// ...
	}
	defer ls.Close()

	payload, err := ls.Load()
	if errors.Is(err, localstore.ErrNoState) {
		// first run, start from defaults
	}

Save and Load are synchronous; the session engine calls Save before
notifying observers so state on disk never lags the UI.
*/
package localstore
