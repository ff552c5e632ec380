// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/prefgrid/models"
)

// AddOption appends a new option. A blank name is silently ignored.
func (b *Board) AddOption(ctx context.Context, name string) (models.Option, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	opt, ok := addEntity(&b.state.Options, name)
	if !ok {
		return models.Option{}, false, nil
	}
	slog.Info("option added", "option_id", opt.ID)
	return opt, true, b.save(ctx)
}

// EditOption renames an option in place. Blank names and unknown ids are no-ops.
func (b *Board) EditOption(ctx context.Context, id, name string) (models.Option, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	opt, ok := editEntity(b.state.Options, id, name)
	if !ok {
		return models.Option{}, false, nil
	}
	slog.Info("option renamed", "option_id", id)
	return opt, true, b.save(ctx)
}

// DeleteOption removes an option and its whole preference row.
func (b *Board) DeleteOption(ctx context.Context, id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ok bool
	b.state.Options, ok = removeEntity(b.state.Options, id)
	if !ok {
		return false, nil
	}
	delete(b.state.Preferences, id)

	slog.Info("option deleted", "option_id", id)
	return true, b.save(ctx)
}

// AddParticipant appends a new participant. A blank name is silently ignored.
func (b *Board) AddParticipant(ctx context.Context, name string) (models.Participant, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := addEntity(&b.state.Participants, name)
	if !ok {
		return models.Participant{}, false, nil
	}
	slog.Info("participant added", "participant_id", p.ID)
	return p, true, b.save(ctx)
}

// EditParticipant renames a participant in place. Blank names and unknown ids are no-ops.
func (b *Board) EditParticipant(ctx context.Context, id, name string) (models.Participant, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := editEntity(b.state.Participants, id, name)
	if !ok {
		return models.Participant{}, false, nil
	}
	slog.Info("participant renamed", "participant_id", id)
	return p, true, b.save(ctx)
}

// DeleteParticipant removes a participant and its cell from every option row.
func (b *Board) DeleteParticipant(ctx context.Context, id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ok bool
	b.state.Participants, ok = removeEntity(b.state.Participants, id)
	if !ok {
		return false, nil
	}
	for _, row := range b.state.Preferences {
		delete(row, id)
	}

	slog.Info("participant deleted", "participant_id", id)
	return true, b.save(ctx)
}

// Option looks up an option by id.
func (b *Board) Option(id string) (models.Option, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := indexOf(b.state.Options, id)
	if i < 0 {
		return models.Option{}, false
	}
	return b.state.Options[i], true
}

func addEntity(list *[]models.Entity, name string) (models.Entity, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Entity{}, false
	}
	e := models.Entity{ID: newID(*list), Name: name}
	*list = append(*list, e)
	return e, true
}

func editEntity(list []models.Entity, id, name string) (models.Entity, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Entity{}, false
	}
	i := indexOf(list, id)
	if i < 0 {
		return models.Entity{}, false
	}
	list[i].Name = name
	return list[i], true
}

func removeEntity(list []models.Entity, id string) ([]models.Entity, bool) {
	i := indexOf(list, id)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}

func indexOf(list []models.Entity, id string) int {
	return slices.IndexFunc(list, func(e models.Entity) bool { return e.ID == id })
}

// newID returns a random UUID that is not already used in list.
func newID(list []models.Entity) string {
	for {
		id := uuid.NewString()
		if indexOf(list, id) < 0 {
			return id
		}
	}
}
