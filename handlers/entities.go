// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/middleware"
	"github.com/danielhkuo/prefgrid/models"
)

// EntityHandler serves add, edit and delete for one entity list.
// Options and participants share the contract, so the list is chosen at
// construction.
type EntityHandler struct {
	add    func(ctx context.Context, name string) (models.Entity, bool, error)
	edit   func(ctx context.Context, id, name string) (models.Entity, bool, error)
	remove func(ctx context.Context, id string) (bool, error)
}

func NewOptionHandler(b *board.Board) *EntityHandler {
	return &EntityHandler{add: b.AddOption, edit: b.EditOption, remove: b.DeleteOption}
}

func NewParticipantHandler(b *board.Board) *EntityHandler {
	return &EntityHandler{add: b.AddParticipant, edit: b.EditParticipant, remove: b.DeleteParticipant}
}

// Add handles POST /options and POST /participants
// 201 with the new entity, or 200 applied=false for a blank name
func (h *EntityHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.NameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entity, applied, err := h.add(r.Context(), req.Name)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	if !applied {
		middleware.JSONResponse(w, http.StatusOK, models.EntityResponse{Applied: false})
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.EntityResponse{
		Entity:  &entity,
		Applied: true,
	})
}

// Edit handles PUT /options/{id} and PUT /participants/{id}
// Blank names and unknown ids answer applied=false
func (h *EntityHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.NameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entity, applied, err := h.edit(r.Context(), id, req.Name)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	resp := models.EntityResponse{Applied: applied}
	if applied {
		resp.Entity = &entity
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Delete handles DELETE /options/{id} and DELETE /participants/{id}
// Requires confirmation via ?confirm=true or X-Confirm-Delete: true
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !deleteConfirmed(r) {
		middleware.ErrorResponse(w, http.StatusPreconditionRequired, "Delete requires confirmation (confirm=true or X-Confirm-Delete: true)")
		return
	}

	applied, err := h.remove(r.Context(), id)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		ID:      id,
		Applied: applied,
	})
}

func deleteConfirmed(r *http.Request) bool {
	for _, v := range []string{r.URL.Query().Get("confirm"), r.Header.Get("X-Confirm-Delete")} {
		if ok, err := strconv.ParseBool(v); err == nil && ok {
			return true
		}
	}
	return false
}
