// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view projects session state into display rows.

ProjectGeneric renders the resizable list board: rows follow roster
order or score order depending on auto-sort, ranks always come from the
sorted standing, and gold/silver/bronze tiers apply only to players
with points on the board. Options.MarkLowest flags the trailing player
for games scored downward.

ProjectFixedSlots renders the fixed-seat boards (two seats for duel,
seven for classic), hiding unused seats and flagging the leaders.
Scores at or above the instant-win sentinel display as "∞".
*/
package view
