// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the scoreboard data model and wire shapes.

# Domain Types

GameSession is the canonical mutable state: game identity, play date,
status, settings and the ordered player roster. Player names are unique
within a roster. PlayDetails carries per-category raw inputs; the active
game's scoring registry rolls them up into each player's Score.

# Export Shape

Export and ExportPlayer mirror the external JSON contract with stable
hyphenated keys:

	{
	  "game": "7-wonders-duel",
	  "play-date": "2026-08-30T18:04:05.000Z",
	  "status": "finished",
	  "auto-sort": true,
	  "celebration-link": "...{{MESSAGE}}",
	  "players": [{"name": "Ada", "score": 62, "play-details": {...}, "rank": 1}]
	}

The rank field appears only on the top three players of a finished game.
Tolerant parsing of historical key spellings lives in package codec.

# Constants

Status values (ongoing, finished), game kind labels, duel victory types and
the instant-win sentinel score are defined here so every package shares one
vocabulary.
*/
package models
