// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strconv"
)

// Session status constants
const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game kind labels
const (
	GameGeneric = "generic"
	GameDuel    = "7-wonders-duel"
	GameClassic = "7-wonders"
)

// Victory type values (duel games only)
const (
	VictoryPoints   = "points"
	VictoryMilitary = "military domination"
	VictoryScience  = "scientific domination"
)

// VictoryTypeKey is the play-details entry holding the duel victory type.
const VictoryTypeKey = "victory-type"

// InstantWinScore is the sentinel assigned to a duel player who wins by
// domination. It sorts above any attainable category total and is rendered
// as "∞" by projections.
const InstantWinScore = 1000

// DefaultCelebrationLink is used when a session has no configured link.
// The {{MESSAGE}} token is replaced with the URL-encoded win announcement.
const DefaultCelebrationLink = "https://www.pellicciotta.com/cards/celebrate.html?message={{MESSAGE}}"

// DefaultNames seed a fresh generic session.
var DefaultNames = []string{"Player #1", "Player #2", "Player #3", "Player #4"}

// PlayDetails holds per-category raw input values for a player before
// rollup into a total score. Values arrive from JSON, so numbers may be
// float64 and the victory type is a string.
type PlayDetails map[string]any

// Value returns the numeric entry for key, treating missing, non-numeric
// and negative entries as 0.
func (d PlayDetails) Value(key string) int {
	var n int
	switch v := d[key].(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		n = int(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		n = int(f)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// VictoryType returns the duel victory type, defaulting to points.
func (d PlayDetails) VictoryType() string {
	if s, ok := d[VictoryTypeKey].(string); ok && s != "" {
		return s
	}
	return VictoryPoints
}

// Clone returns a copy safe for independent mutation.
func (d PlayDetails) Clone() PlayDetails {
	if d == nil {
		return nil
	}
	out := make(PlayDetails, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Player is one roster entry. Score is derived from PlayDetails for games
// with category registries; for generic sessions it is the sole
// authoritative value.
type Player struct {
	Name        string      `json:"name"`
	Score       int         `json:"score"`
	PlayDetails PlayDetails `json:"play-details,omitempty"`
}

// GameSession is the canonical mutable state: game identity, roster and
// settings. PlayDate is an ISO-8601 timestamp, empty until a finished save
// stamps it.
type GameSession struct {
	Game            string
	PlayDate        string
	Status          string
	AutoSort        bool
	CelebrationLink string
	Players         []Player
}

// Clone returns a deep copy of the session.
func (s GameSession) Clone() GameSession {
	out := s
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.PlayDetails = p.PlayDetails.Clone()
		out.Players[i] = p
	}
	return out
}

// Export is the stable external JSON shape shared by local persistence,
// file export/import and the cloud store.
type Export struct {
	Game            string         `json:"game,omitempty"`
	PlayDate        string         `json:"play-date,omitempty"`
	Status          string         `json:"status,omitempty"`
	AutoSort        bool           `json:"auto-sort"`
	CelebrationLink string         `json:"celebration-link,omitempty"`
	Players         []ExportPlayer `json:"players"`
}

// ExportPlayer is a player in the export shape. Rank is only present for
// the top three of a finished game.
type ExportPlayer struct {
	Name        string      `json:"name"`
	Score       int         `json:"score"`
	PlayDetails PlayDetails `json:"play-details,omitempty"`
	Rank        int         `json:"rank,omitempty"`
}

// SaveResponse is the cloud endpoint's success envelope.
type SaveResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
}

// ErrorEnvelope is the cloud endpoint's error envelope.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
