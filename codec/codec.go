// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/ranking"
)

// ErrMissingPlayers is returned when an imported document has no players
// array. The caller must leave its current state untouched.
var ErrMissingPlayers = errors.New("missing players array")

// ISOMillis matches JavaScript's Date.toISOString output.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// Export serializes a session into the stable external shape. A finished
// export reorders players winner-first and stamps rank on the top three.
// refreshPlayDate replaces the play date with the current time; otherwise
// the existing value is preserved.
func Export(s models.GameSession, status string, refreshPlayDate bool) models.Export {
	playDate := s.PlayDate
	if refreshPlayDate {
		playDate = time.Now().UTC().Format(ISOMillis)
	}

	players := s.Players
	var ranks map[string]int
	if status == models.StatusFinished {
		players = ranking.SortedByScore(players)
		ranks = ranking.Ranks(players)
	}

	out := models.Export{
		Game:            s.Game,
		PlayDate:        playDate,
		Status:          status,
		AutoSort:        s.AutoSort,
		CelebrationLink: s.CelebrationLink,
		Players:         make([]models.ExportPlayer, len(players)),
	}
	for i, p := range players {
		ep := models.ExportPlayer{
			Name:        p.Name,
			Score:       p.Score,
			PlayDetails: p.PlayDetails.Clone(),
		}
		if rank := ranks[p.Name]; rank >= 1 && rank <= 3 {
			ep.Rank = rank
		}
		out.Players[i] = ep
	}
	return out
}

// Field alias table for tolerant imports. Hyphenated spellings are
// canonical and take precedence over the historical camel-case ones.
var fieldAliases = map[string][]string{
	"game":             {"game"},
	"play-date":        {"play-date", "playDate"},
	"status":           {"status"},
	"auto-sort":        {"auto-sort", "autoSort"},
	"celebration-link": {"celebration-link", "celebrationLink"},
	"play-details":     {"play-details", "playDetails"},
	"players":          {"players"},
}

func pick(doc map[string]json.RawMessage, field string) (json.RawMessage, bool) {
	for _, key := range fieldAliases[field] {
		if raw, ok := doc[key]; ok {
			return raw, true
		}
	}
	return nil, false
}

func pickString(doc map[string]json.RawMessage, field string) (string, bool) {
	raw, ok := pick(doc, field)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Import parses an external JSON document into a session, accepting either
// hyphenated or camel-case key spellings. A document without a players
// array fails; everything else is normalized: names trimmed (empty entries
// dropped), scores coerced to non-negative integers, play details
// defaulted to an empty mapping.
func Import(data []byte) (models.GameSession, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.GameSession{}, fmt.Errorf("parse import: %w", err)
	}

	rawPlayers, ok := pick(doc, "players")
	if !ok {
		return models.GameSession{}, ErrMissingPlayers
	}
	var playerDocs []map[string]json.RawMessage
	if err := json.Unmarshal(rawPlayers, &playerDocs); err != nil {
		return models.GameSession{}, ErrMissingPlayers
	}

	session := models.GameSession{
		Status:   models.StatusOngoing,
		AutoSort: true,
	}
	if game, ok := pickString(doc, "game"); ok {
		session.Game = game
	}
	if playDate, ok := pickString(doc, "play-date"); ok {
		session.PlayDate = playDate
	}
	if status, ok := pickString(doc, "status"); ok && status != "" {
		session.Status = status
	}
	if raw, ok := pick(doc, "auto-sort"); ok {
		var autoSort bool
		if err := json.Unmarshal(raw, &autoSort); err == nil {
			session.AutoSort = autoSort
		}
	}
	if link, ok := pickString(doc, "celebration-link"); ok {
		session.CelebrationLink = link
	}

	session.Players = make([]models.Player, 0, len(playerDocs))
	seen := make(map[string]bool, len(playerDocs))
	for _, pd := range playerDocs {
		player := importPlayer(pd)
		if player.Name == "" || seen[player.Name] {
			continue
		}
		seen[player.Name] = true
		session.Players = append(session.Players, player)
	}
	return session, nil
}

func importPlayer(doc map[string]json.RawMessage) models.Player {
	var player models.Player

	var name string
	if raw, ok := doc["name"]; ok {
		if err := json.Unmarshal(raw, &name); err != nil {
			// Historical exports hold names as plain strings only; anything
			// else is treated as absent and the entry gets dropped.
			name = ""
		}
	}
	player.Name = strings.TrimSpace(name)
	player.Score = coerceScore(doc["score"])

	player.PlayDetails = models.PlayDetails{}
	if raw, ok := pick(doc, "play-details"); ok {
		var details models.PlayDetails
		if err := json.Unmarshal(raw, &details); err == nil && details != nil {
			player.PlayDetails = details
		}
	}
	return player
}

// coerceScore mirrors Number(score) || 0: numeric strings parse, anything
// invalid becomes 0, negatives clamp to 0.
func coerceScore(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		f = parsed
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

var subsecondSuffix = regexp.MustCompile(`\.\d+Z?$`)

// FinishedFilename derives the immutable record name for a finished game
// from its ISO play date: colons and hyphens removed, sub-second and zone
// suffix stripped.
func FinishedFilename(playDate string) string {
	stamp := strings.NewReplacer(":", "", "-", "").Replace(playDate)
	stamp = subsecondSuffix.ReplaceAllString(stamp, "")
	return "final-scores-" + stamp + ".json"
}
