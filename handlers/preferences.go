// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/middleware"
	"github.com/danielhkuo/prefgrid/models"
)

type PreferenceHandler struct {
	board *board.Board
}

func NewPreferenceHandler(b *board.Board) *PreferenceHandler {
	return &PreferenceHandler{board: b}
}

// GetPreference handles GET /preferences/{optionId}/{participantId}
// Missing cells read as unknown
func (h *PreferenceHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	optionID := r.PathValue("optionId")
	participantID := r.PathValue("participantId")

	middleware.JSONResponse(w, http.StatusOK, models.PreferenceResponse{
		OptionID:      optionID,
		ParticipantID: participantID,
		State:         h.board.Preference(optionID, participantID),
	})
}

// Toggle handles POST /preferences/{optionId}/{participantId}/toggle
// Returns the new state; cells of missing entities are left alone (applied=false)
func (h *PreferenceHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	optionID := r.PathValue("optionId")
	participantID := r.PathValue("participantId")

	state, applied, err := h.board.Toggle(r.Context(), optionID, participantID)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ToggleResponse{
		OptionID:      optionID,
		ParticipantID: participantID,
		State:         state,
		Applied:       applied,
	})
}
