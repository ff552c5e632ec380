// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/prefgrid/models"
)

var (
	ErrPersist      = errors.New("failed to persist snapshot")
	ErrUnknownLabel = errors.New("unknown label field")
	ErrInvalidSort  = errors.New("invalid sort criterion")
)

// Saver writes the full snapshot after every mutation.
type Saver interface {
	Save(ctx context.Context, snap models.Snapshot) error
}

// Board owns the option and participant lists, the preference matrix and
// the labels. It is the only writer: every mutation goes through a method,
// and each one (cascade cleanup and save included) finishes before any
// other call observes the state.
type Board struct {
	mu       sync.Mutex
	state    models.Snapshot
	saver    Saver
	collator *collate.Collator
	sort     models.SortSpec
}

// New takes ownership of a copy of snap. Names are ordered using locale.
func New(snap models.Snapshot, saver Saver, locale language.Tag) *Board {
	state := snap.Clone()
	if state.Preferences == nil {
		state.Preferences = models.Matrix{}
	}
	return &Board{
		state:    state,
		saver:    saver,
		collator: collate.New(locale),
		sort:     DefaultSort(),
	}
}

// Snapshot returns a deep copy of the current state.
func (b *Board) Snapshot() models.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// save must be called with b.mu held. The in-memory mutation stands even
// when the write fails; the next successful save carries it.
func (b *Board) save(ctx context.Context) error {
	if err := b.saver.Save(ctx, b.state); err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Labels

// SetLabel replaces one of the free-text labels. Blank text is ignored.
func (b *Board) SetLabel(ctx context.Context, field, value string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var dst *string
	switch field {
	case models.LabelTitle:
		dst = &b.state.Title
	case models.LabelSubtitle:
		dst = &b.state.Subtitle
	case models.LabelOptions:
		dst = &b.state.OptionsLabel
	case models.LabelParticipants:
		dst = &b.state.ParticipantsLabel
	default:
		return "", false, fmt.Errorf("%w: %q", ErrUnknownLabel, field)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return *dst, false, nil
	}

	*dst = value
	slog.Info("label updated", "field", field)
	return value, true, b.save(ctx)
}

// ToggleSectionsCollapsed flips the collapse flag of the management sections.
func (b *Board) ToggleSectionsCollapsed(ctx context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.SectionsCollapsed = !b.state.SectionsCollapsed
	return b.state.SectionsCollapsed, b.save(ctx)
}
