// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board owns the options, participants, preference matrix and labels.

# State Owner

A Board is built from a loaded snapshot and a Saver:

	adapter := storage.NewAdapter(slot)
	b := board.New(adapter.Load(ctx), adapter, cfg.Locale)

All mutation goes through Board methods. Every successful mutation writes
the full snapshot through the Saver before the method returns; a failed
write is reported as ErrPersist.

# Entities

	AddOption / AddParticipant       append, id is a fresh UUID
	EditOption / EditParticipant     rename in place
	DeleteOption / DeleteParticipant remove and clean the matrix

Blank names and unknown ids are silent no-ops: the bool result is false
and nothing is saved.

Deleting an option drops its whole matrix row. Deleting a participant drops
its cell from every row. The matrix never references a missing id, so a
re-added participant starts with unknown everywhere.

# Preferences

	st := b.Preference(optionID, participantID)
	st, applied, err := b.Toggle(ctx, optionID, participantID)

Toggle is the only way to change a cell:

	unknown → on → off → unknown

# Summary and Sort

Summarize counts states over the current participants; the counts always
add up to the participant count. SortedOptions orders by name (locale
aware, golang.org/x/text/collate) or by one of the counts, stable on ties.

NextSort implements header clicks: clicking the active criterion flips the
direction, clicking a new one selects ascending for name and descending
for the counts. Results returns the whole grid for rendering.
*/
package board
