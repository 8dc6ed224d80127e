// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking computes competition ranks over player scores.

# Competition Ranking

Tied players share a rank and the following rank skips the tied count,
so scores [10, 10, 7, 5] rank [1, 1, 3, 4]:

	sorted := ranking.SortedByScore(players)
	ranks := ranking.Ranks(sorted)

Sorting is by score descending with name ascending as the tie-break,
and is stable, so equal players keep their roster order otherwise.

Winners returns every player sharing the top score; with an all-zero
board every player is a winner.
*/
package ranking
