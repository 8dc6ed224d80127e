// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec converts sessions to and from their persisted JSON shape.

# Export

Export produces the canonical hyphenated document. Ongoing exports keep
roster order; finished exports are sorted by score with competition
ranks attached to the top three:

	doc := codec.Export(state, models.StatusFinished, true)

# Import

Import is tolerant: it accepts hyphenated keys and their older
camelCase spellings (play-date/playDate, auto-sort/autoSort, and so
on), coerces scores from floats and numeric strings, drops blank
player names, and de-duplicates the roster. The only hard requirement
is a players array:

	state, err := codec.Import(payload)
	if errors.Is(err, codec.ErrMissingPlayers) {
		// not a scoreboard document
	}

# Filenames

FinishedFilename derives the archive name from a play date, stripping
the punctuation and millisecond suffix from the ISO timestamp:

	codec.FinishedFilename("2026-08-30T18:04:05.123Z")
	// final-scores-20260830T180405.json
*/
package codec
