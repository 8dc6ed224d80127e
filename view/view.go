// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"strconv"

	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/ranking"
)

// Tier is the medal styling bucket for a ranked row.
type Tier string

const (
	TierNone   Tier = ""
	TierGold   Tier = "gold"
	TierSilver Tier = "silver"
	TierBronze Tier = "bronze"
)

// Options control optional projection features.
type Options struct {
	// MarkLowest flags the lowest-ranked player(s). Off by default.
	MarkLowest bool
}

// Row is one display-ready entry on the generic board.
type Row struct {
	Name    string
	Score   int
	Display string
	Rank    int
	Tier    Tier
	Lowest  bool
}

// Slot is one positional entry on a fixed-layout board. Slots past the
// roster are Hidden so callers keep stable indices.
type Slot struct {
	Name    string
	Score   int
	Display string
	Rank    int
	Winner  bool
	Hidden  bool
}

// ProjectGeneric derives the generic board rows from a session without
// mutating it. Display order follows auto-sort (descending score, then
// name) or roster order; ranks always come from the score-sorted view so
// they stay correct either way. Medal tiers and the lowest flag only apply
// to players with a positive score.
func ProjectGeneric(s models.GameSession, opts Options) []Row {
	ordered := s.Players
	if s.AutoSort {
		ordered = ranking.SortedByScore(s.Players)
	}
	ranks := ranking.Ranks(s.Players)
	maxRank := ranking.MaxRank(s.Players)

	rows := make([]Row, len(ordered))
	for i, p := range ordered {
		rank := ranks[p.Name]
		if rank == 0 {
			rank = 1
		}
		row := Row{
			Name:    p.Name,
			Score:   p.Score,
			Display: displayScore(p.Score),
			Rank:    rank,
		}
		if p.Score > 0 {
			switch rank {
			case 1:
				row.Tier = TierGold
			case 2:
				row.Tier = TierSilver
			case 3:
				row.Tier = TierBronze
			}
			if opts.MarkLowest && rank == maxRank && len(ordered) > 1 {
				row.Lowest = true
			}
		}
		rows[i] = row
	}
	return rows
}

// Fixed slot counts for the structured boards.
const (
	DuelSlots    = 2
	ClassicSlots = 7
)

// ProjectFixedSlots derives exactly slotCount positional entries for a
// fixed board layout. Roster order is preserved; slots beyond the roster
// are hidden rather than omitted. Every player tied for a positive maximum
// score is marked as a winner.
func ProjectFixedSlots(s models.GameSession, slotCount int) []Slot {
	ranks := ranking.Ranks(s.Players)

	maxScore := 0
	for _, p := range s.Players {
		if p.Score > maxScore {
			maxScore = p.Score
		}
	}

	slots := make([]Slot, slotCount)
	for i := range slots {
		if i >= len(s.Players) {
			slots[i] = Slot{Hidden: true}
			continue
		}
		p := s.Players[i]
		slots[i] = Slot{
			Name:    p.Name,
			Score:   p.Score,
			Display: displayScore(p.Score),
			Rank:    ranks[p.Name],
			Winner:  maxScore > 0 && p.Score == maxScore,
		}
	}
	return slots
}

// displayScore renders the instant-win sentinel as ∞.
func displayScore(score int) string {
	if score >= models.InstantWinScore {
		return "∞"
	}
	return strconv.Itoa(score)
}
