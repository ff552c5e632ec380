// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/middleware"
	"github.com/danielhkuo/prefgrid/models"
)

type BoardHandler struct {
	board *board.Board
}

func NewBoardHandler(b *board.Board) *BoardHandler {
	return &BoardHandler{board: b}
}

// GetBoard handles GET /board
// Returns the full snapshot: lists, matrix, labels and collapse flag
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.board.Snapshot())
}

// SetLabel handles PUT /labels/{field}
// Blank values are ignored and reported with applied=false
func (h *BoardHandler) SetLabel(w http.ResponseWriter, r *http.Request) {
	field := r.PathValue("field")

	var req models.LabelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	value, applied, err := h.board.SetLabel(r.Context(), field, req.Value)
	if errors.Is(err, board.ErrUnknownLabel) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "field must be one of: title, subtitle, options, participants")
		return
	}
	if err != nil {
		writeMutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LabelResponse{
		Field:   field,
		Value:   value,
		Applied: applied,
	})
}

// ToggleSections handles POST /sections/toggle
func (h *BoardHandler) ToggleSections(w http.ResponseWriter, r *http.Request) {
	collapsed, err := h.board.ToggleSectionsCollapsed(r.Context())
	if err != nil {
		writeMutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SectionsResponse{
		SectionsCollapsed: collapsed,
	})
}

// writeMutationError maps board errors from a mutation to a response.
// The mutation itself has been applied in memory.
func writeMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, board.ErrPersist) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
		return
	}
	slog.Error("unexpected board error", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
}
