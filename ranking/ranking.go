// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"sort"

	"github.com/hinolugi/scoreboard/models"
)

// SortedByScore returns a copy of players ordered descending by score,
// ties broken ascending by name so ordering is deterministic.
func SortedByScore(players []models.Player) []models.Player {
	sorted := make([]models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Ranks assigns 1-based competition ranks by name: tied scores share a
// rank, and the next distinct score gets its 1-based position in the
// sorted order (1,1,3,4...).
func Ranks(players []models.Player) map[string]int {
	sorted := SortedByScore(players)
	ranks := make(map[string]int, len(sorted))
	last := 0
	for i, p := range sorted {
		if i == 0 {
			last = 1
		} else if p.Score != sorted[i-1].Score {
			last = i + 1
		}
		ranks[p.Name] = last
	}
	return ranks
}

// MaxRank returns the rank of the lowest-placed player, or 1 for an empty
// roster.
func MaxRank(players []models.Player) int {
	sorted := SortedByScore(players)
	if len(sorted) == 0 {
		return 1
	}
	return Ranks(players)[sorted[len(sorted)-1].Name]
}

// Winners returns the names of every player tied for the maximum score.
// Empty roster yields an empty result.
func Winners(players []models.Player) []string {
	if len(players) == 0 {
		return nil
	}
	max := players[0].Score
	for _, p := range players[1:] {
		if p.Score > max {
			max = p.Score
		}
	}
	var winners []string
	for _, p := range players {
		if p.Score == max {
			winners = append(winners, p.Name)
		}
	}
	return winners
}
