// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/prefgrid/models"
)

// SaveObserver is told about every save attempt.
type SaveObserver interface {
	ObserveSave(size int, err error)
}

// Adapter reads and writes whole snapshots through a Slot.
type Adapter struct {
	slot     Slot
	observer SaveObserver
}

func NewAdapter(slot Slot) *Adapter {
	return &Adapter{slot: slot}
}

// SetObserver registers o for save notifications. Call before the adapter
// is shared.
func (a *Adapter) SetObserver(o SaveObserver) {
	a.observer = o
}

// Load returns the stored snapshot, or the defaults when the slot is empty
// or unreadable. Errors are logged, never returned: a broken blob must not
// keep the application from starting.
func (a *Adapter) Load(ctx context.Context) models.Snapshot {
	data, err := a.slot.Read(ctx)
	if errors.Is(err, ErrNotFound) {
		slog.Info("no stored snapshot, starting empty")
		return models.DefaultSnapshot()
	}
	if err != nil {
		slog.Error("failed to read snapshot", "error", err)
		return models.DefaultSnapshot()
	}

	snap, report, err := Decode(data)
	if err != nil {
		slog.Error("failed to parse snapshot, starting empty", "error", err)
		return models.DefaultSnapshot()
	}
	if report.Changed() {
		slog.Warn("snapshot repaired on load",
			"bad_fields", report.BadFields,
			"dropped_entities", report.DroppedEntities,
			"orphaned_rows", report.OrphanedRows,
			"orphaned_cells", report.OrphanedCells,
		)
	}

	slog.Info("snapshot loaded",
		"options", len(snap.Options),
		"participants", len(snap.Participants),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return snap
}

// Save overwrites the slot with the full snapshot.
func (a *Adapter) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := Encode(snap)
	if err == nil {
		err = a.slot.Write(ctx, data)
		if err != nil {
			err = fmt.Errorf("failed to save snapshot: %w", err)
		}
	}
	if a.observer != nil {
		a.observer.ObserveSave(len(data), err)
	}
	if err != nil {
		return err
	}
	slog.Debug("snapshot saved", "size", humanize.Bytes(uint64(len(data))))
	return nil
}

func (a *Adapter) Close() error {
	return a.slot.Close()
}

// Encode serializes a snapshot. Nil collections are written as empty ones so
// the blob always has the full shape.
func Encode(snap models.Snapshot) ([]byte, error) {
	if snap.Options == nil {
		snap.Options = []models.Option{}
	}
	if snap.Participants == nil {
		snap.Participants = []models.Participant{}
	}
	if snap.Preferences == nil {
		snap.Preferences = models.Matrix{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeReport lists what Decode had to default or drop.
type DecodeReport struct {
	BadFields       []string
	DroppedEntities int
	OrphanedRows    int
	OrphanedCells   int
}

func (r DecodeReport) Changed() bool {
	return len(r.BadFields) > 0 || r.DroppedEntities > 0 || r.OrphanedRows > 0 || r.OrphanedCells > 0
}

// Decode parses a stored blob field by field. An absent, null, empty or
// mistyped field takes its default without rejecting the rest; only a blob
// that is not a JSON object fails. Entities without an id or with a
// repeated id are dropped, and matrix keys that reference no current
// entity are pruned.
func Decode(data []byte) (models.Snapshot, DecodeReport, error) {
	var report DecodeReport

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.Snapshot{}, report, fmt.Errorf("invalid snapshot: %w", err)
	}
	if fields == nil {
		return models.Snapshot{}, report, errors.New("invalid snapshot: null")
	}

	snap := models.DefaultSnapshot()

	decodeField(fields, "options", &snap.Options, &report)
	decodeField(fields, "participants", &snap.Participants, &report)
	decodeField(fields, "preferences", &snap.Preferences, &report)
	decodeText(fields, "title", &snap.Title, &report)
	decodeText(fields, "subtitle", &snap.Subtitle, &report)
	decodeText(fields, "optionsLabel", &snap.OptionsLabel, &report)
	decodeText(fields, "participantsLabel", &snap.ParticipantsLabel, &report)
	decodeField(fields, "sectionsCollapsed", &snap.SectionsCollapsed, &report)

	if snap.Options == nil {
		snap.Options = []models.Option{}
	}
	if snap.Participants == nil {
		snap.Participants = []models.Participant{}
	}
	if snap.Preferences == nil {
		snap.Preferences = models.Matrix{}
	}

	var dropped int
	snap.Options, dropped = dedupeEntities(snap.Options)
	report.DroppedEntities += dropped
	snap.Participants, dropped = dedupeEntities(snap.Participants)
	report.DroppedEntities += dropped

	report.OrphanedRows, report.OrphanedCells = pruneOrphans(snap)

	return snap, report, nil
}

// decodeField leaves dst untouched when the field is absent or null, and
// restores the zero value when it fails to decode.
func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T, report *DecodeReport) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		report.BadFields = append(report.BadFields, name)
		return
	}
	*dst = v
}

// decodeText keeps the default for blank strings as well.
func decodeText(fields map[string]json.RawMessage, name string, dst *string, report *DecodeReport) {
	var v string
	decodeField(fields, name, &v, report)
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func dedupeEntities(list []models.Entity) ([]models.Entity, int) {
	seen := make(map[string]struct{}, len(list))
	out := make([]models.Entity, 0, len(list))
	for _, e := range list {
		if e.ID == "" {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out, len(list) - len(out)
}

func pruneOrphans(snap models.Snapshot) (rows, cells int) {
	options := make(map[string]struct{}, len(snap.Options))
	for _, o := range snap.Options {
		options[o.ID] = struct{}{}
	}
	participants := make(map[string]struct{}, len(snap.Participants))
	for _, p := range snap.Participants {
		participants[p.ID] = struct{}{}
	}

	for optionID, row := range snap.Preferences {
		if _, ok := options[optionID]; !ok || row == nil {
			delete(snap.Preferences, optionID)
			rows++
			continue
		}
		for participantID := range row {
			if _, ok := participants[participantID]; !ok {
				delete(row, participantID)
				cells++
			}
		}
	}
	return rows, cells
}
