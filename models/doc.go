// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, request, and response types.

# Domain Types

  - Entity (aliased as Option and Participant): id and display name
  - State: tri-state preference (unknown, on, off)
  - Matrix: optionID -> participantID -> State, sparse
  - Snapshot: the full persisted state

A missing matrix entry at either level reads as unknown:

	st := snap.Preferences.Get(optionID, participantID)

State.Next implements the fixed toggle cycle:

	unknown → on → off → unknown

# View Types

  - Summary: per-option state counts
  - SortSpec: criterion plus direction
  - ResultsTable, ResultRow, Cell: the results grid in display order

# Request Types

  - NameRequest: name (add and edit)
  - LabelRequest: value
  - SortRequest: criterion

# Response Types

  - EntityResponse: entity, applied
  - DeleteResponse: id, applied
  - PreferenceResponse: option_id, participant_id, state
  - ToggleResponse: PreferenceResponse plus applied
  - LabelResponse, SectionsResponse, SummaryResponse
  - ErrorResponse: error, message

# Constants

States:

	StateUnknown     = "unknown"
	StateAffirmative = "on"
	StateNegative    = "off"

Sort criteria:

	SortName        = "name"
	SortAffirmative = "yes"
	SortNegative    = "no"
	SortUnknown     = "unknown"

Selecting a new criterion defaults to ascending for name and descending
for the counts.
*/
package models
