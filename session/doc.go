// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session owns the live scoreboard state.

# Update Path

Every mutation entry point (SetPlayers, SetScore, AdjustScore,
SetCategoryValue, SetVictoryType, settings setters) runs the same
sequence under the session mutex:

	mutate → recalculate scores → save locally → notify observer

Local persistence always completes before the observer sees the change, so
a crash between the two can never leave saved state inconsistent with the
last user action. Multi-step mutations — in particular the duel rule that
at most one player may hold a domination victory — finish entirely inside
the critical section.

# Cloud Operations

SaveToCloud and LoadFromCloud talk to a Remote (the cloud store client).
Loads are last-writer-wins: a response arriving after local edits simply
overwrites them; there is no versioning or merge. Failures on either
direction leave the current state unmodified.

Finish exports the session as a finished-game record (winner-first order,
top three ranked, play date stamped) and only marks the local session
finished once the remote save succeeded.

# Usage

	sess := session.New(saver, func(snap models.GameSession) {
		rows := view.ProjectGeneric(snap, view.Options{})
		paint(rows)
	})
	sess.Bootstrap()
	sess.AdjustScore("Ada", +1)
*/
package session
