// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the prefgrid API.

# Handler Types

Each handler is a struct over the shared *board.Board:

  - BoardHandler: full snapshot, labels, section collapse
  - EntityHandler: add, edit, delete for options or participants
  - PreferenceHandler: read and toggle matrix cells
  - ResultsHandler: results grid, header-click sorting, option summary

Handlers are created via constructor functions:

	optionHandler := handlers.NewOptionHandler(b)
	participantHandler := handlers.NewParticipantHandler(b)

# No-op Mutations

Blank names, blank labels and unknown ids are not errors. The handler
answers with applied=false and nothing is saved.

# Delete Confirmation

Deletes cascade into the preference matrix and cannot be undone, so they
require ?confirm=true or the X-Confirm-Delete: true header. Without it the
handler answers 428 Precondition Required.

# Errors

A mutation whose save fails stays applied in memory and answers 500 with
"Failed to save". Invalid JSON, unknown label fields and unknown sort
criteria answer 400.
*/
package handlers
