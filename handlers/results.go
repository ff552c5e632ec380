// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/middleware"
	"github.com/danielhkuo/prefgrid/models"
)

type ResultsHandler struct {
	board *board.Board
}

func NewResultsHandler(b *board.Board) *ResultsHandler {
	return &ResultsHandler{board: b}
}

// GetResults handles GET /results?sort=&order=
// Without sort the board's current view sort is used; with sort but no
// order the criterion's default direction applies
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	spec := h.board.Sort()

	if c := r.URL.Query().Get("sort"); c != "" {
		criterion := models.SortCriterion(c)
		if !criterion.Valid() {
			middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be one of: name, yes, no, unknown")
			return
		}
		spec = models.SortSpec{Criterion: criterion, Direction: criterion.DefaultDirection()}
	}

	if d := r.URL.Query().Get("order"); d != "" {
		direction := models.SortDirection(d)
		if !direction.Valid() {
			middleware.ErrorResponse(w, http.StatusBadRequest, "order must be asc or desc")
			return
		}
		spec.Direction = direction
	}

	middleware.JSONResponse(w, http.StatusOK, h.board.Results(spec))
}

// ClickSort handles POST /results/sort
// Same criterion flips the direction, a new one starts at its default
func (h *ResultsHandler) ClickSort(w http.ResponseWriter, r *http.Request) {
	var req models.SortRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	spec, err := h.board.ClickSort(req.Criterion)
	if errors.Is(err, board.ErrInvalidSort) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "criterion must be one of: name, yes, no, unknown")
		return
	}
	if err != nil {
		writeMutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.board.Results(spec))
}

// GetSummary handles GET /options/{id}/summary
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.board.Option(id); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		OptionID: id,
		Summary:  h.board.Summarize(id),
	})
}
