// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/hinolugi/scoreboard/models"

// Category is one scoring row on a structured board. Coins rows contribute
// floor(value/3) to the total instead of the raw value.
type Category struct {
	Label string
	Key   string
	Coins bool
}

// Registry is the fixed, ordered category list for one game kind.
// Registries are immutable configuration; iterate Categories in order.
type Registry struct {
	Game       string
	Categories []Category
	InstantWin bool
}

// Duel is the 7 Wonders Duel board: eight categories plus the
// military/scientific domination override.
var Duel = Registry{
	Game: models.GameDuel,
	Categories: []Category{
		{Label: "Blue cards", Key: "blue-cards"},
		{Label: "Green cards", Key: "green-cards"},
		{Label: "Yellow cards", Key: "yellow-cards"},
		{Label: "Purple cards", Key: "purple-cards"},
		{Label: "Progress tokens", Key: "progress-tokens"},
		{Label: "Wonders", Key: "wonders"},
		{Label: "Coins", Key: "money-coins", Coins: true},
		{Label: "Military", Key: "military"},
	},
	InstantWin: true,
}

// Classic is the full 7 Wonders board: seven categories, no override.
var Classic = Registry{
	Game: models.GameClassic,
	Categories: []Category{
		{Label: "Blue cards", Key: "blue-cards"},
		{Label: "Green cards", Key: "green-cards"},
		{Label: "Yellow cards", Key: "yellow-cards"},
		{Label: "Purple cards", Key: "purple-cards"},
		{Label: "Wonders", Key: "wonders"},
		{Label: "Coins", Key: "money-coins", Coins: true},
		{Label: "Military", Key: "military"},
	},
}

// RegistryFor returns the registry for a game kind, or nil for generic
// sessions (and unknown labels), where the score is authoritative.
func RegistryFor(game string) *Registry {
	switch game {
	case models.GameDuel:
		return &Duel
	case models.GameClassic:
		return &Classic
	default:
		return nil
	}
}

// Recalculate rolls play details up into a total under the registry's
// rules. Missing categories count as 0. When the registry supports the
// domination override and the victory type is anything other than points,
// the total is forced to the instant-win sentinel, bypassing the sum.
func Recalculate(details models.PlayDetails, reg *Registry) int {
	if reg == nil {
		return 0
	}
	if reg.InstantWin {
		switch details.VictoryType() {
		case models.VictoryMilitary, models.VictoryScience:
			return models.InstantWinScore
		}
	}
	total := 0
	for _, cat := range reg.Categories {
		v := details.Value(cat.Key)
		if cat.Coins {
			total += v / 3
		} else {
			total += v
		}
	}
	return total
}
