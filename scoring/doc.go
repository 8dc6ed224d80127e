// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring defines per-game category registries and total recomputation.

# Registries

Each supported game has a fixed registry of scoring categories:

	reg := scoring.RegistryFor(models.GameDuel)

The duel registry has eight categories (including progress tokens and a
military track) and supports instant-win victory types; the classic
registry has seven and does not. Unknown games return nil, which keeps
manually entered totals untouched.

# Recalculation

Recalculate folds a player's category values into a total:

	total := scoring.Recalculate(player.PlayDetails, reg)

Coin categories contribute floor(value / 3). When the registry supports
instant wins and the player's victory type is a domination, the total is
the instant-win sentinel instead of the sum.
*/
package scoring
