// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/prefgrid/models"
)

// Preference returns the state of one cell; unknown when no entry exists.
func (b *Board) Preference(optionID, participantID string) models.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Preferences.Get(optionID, participantID)
}

// Toggle advances one cell through unknown → on → off → unknown and returns
// the new state. Cells whose option or participant does not exist are left
// alone so the matrix never holds keys for missing entities.
func (b *Board) Toggle(ctx context.Context, optionID, participantID string) (models.State, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if indexOf(b.state.Options, optionID) < 0 || indexOf(b.state.Participants, participantID) < 0 {
		return models.StateUnknown, false, nil
	}

	row, ok := b.state.Preferences[optionID]
	if !ok {
		row = make(map[string]models.State)
		b.state.Preferences[optionID] = row
	}
	current, ok := row[participantID]
	if !ok {
		current = models.StateUnknown
	}
	next := current.Next()
	row[participantID] = next

	slog.Debug("preference toggled", "option_id", optionID, "participant_id", participantID, "state", next)
	return next, true, b.save(ctx)
}
