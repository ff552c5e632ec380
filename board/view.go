// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/prefgrid/models"
)

var sortCriteria = []models.SortCriterion{
	models.SortName,
	models.SortAffirmative,
	models.SortNegative,
	models.SortUnknown,
}

// DefaultSort is name ascending.
func DefaultSort() models.SortSpec {
	return models.SortSpec{Criterion: models.SortName, Direction: models.Ascending}
}

// NextSort applies a header click: the active criterion flips direction, a
// new one starts at its default direction.
func NextSort(current models.SortSpec, clicked models.SortCriterion) models.SortSpec {
	if current.Criterion == clicked {
		return models.SortSpec{Criterion: clicked, Direction: current.Direction.Flip()}
	}
	return models.SortSpec{Criterion: clicked, Direction: clicked.DefaultDirection()}
}

// Sort returns the board's current view sort.
func (b *Board) Sort() models.SortSpec {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sort
}

// ClickSort updates the view sort as a header click would. The view sort
// lives in memory only and is not part of the snapshot.
func (b *Board) ClickSort(clicked models.SortCriterion) (models.SortSpec, error) {
	if !clicked.Valid() {
		return models.SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSort, clicked)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.sort = NextSort(b.sort, clicked)
	return b.sort, nil
}

// Summarize counts the states of one option across all current participants.
func (b *Board) Summarize(optionID string) models.Summary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.summarize(optionID)
}

func (b *Board) summarize(optionID string) models.Summary {
	var s models.Summary
	for _, p := range b.state.Participants {
		switch b.state.Preferences.Get(optionID, p.ID) {
		case models.StateAffirmative:
			s.Affirmative++
		case models.StateNegative:
			s.Negative++
		default:
			s.Unknown++
		}
	}
	return s
}

// SortedOptions returns the options in display order. Ties keep insertion
// order in both directions. An unrecognized criterion leaves the list as is.
func (b *Board) SortedOptions(spec models.SortSpec) []models.Option {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sortedOptions(spec)
}

func (b *Board) sortedOptions(spec models.SortSpec) []models.Option {
	out := slices.Clone(b.state.Options)
	if !spec.Criterion.Valid() {
		return out
	}

	sign := 1
	if spec.Direction == models.Descending {
		sign = -1
	}

	if spec.Criterion == models.SortName {
		slices.SortStableFunc(out, func(x, y models.Option) int {
			return sign * b.collator.CompareString(x.Name, y.Name)
		})
		return out
	}

	counts := make(map[string]int, len(out))
	for _, o := range out {
		s := b.summarize(o.ID)
		switch spec.Criterion {
		case models.SortAffirmative:
			counts[o.ID] = s.Affirmative
		case models.SortNegative:
			counts[o.ID] = s.Negative
		case models.SortUnknown:
			counts[o.ID] = s.Unknown
		}
	}
	slices.SortStableFunc(out, func(x, y models.Option) int {
		return sign * (counts[x.ID] - counts[y.ID])
	})
	return out
}

// Results builds the full grid in display order. Empty is set when there
// are no options or no participants, in which case no rows are returned.
func (b *Board) Results(spec models.SortSpec) models.ResultsTable {
	b.mu.Lock()
	defer b.mu.Unlock()

	table := models.ResultsTable{
		OptionsLabel: b.state.OptionsLabel,
		Participants: slices.Clone(b.state.Participants),
		Rows:         []models.ResultRow{},
		Sort:         spec,
		SortIcons:    make(map[string]string, len(sortCriteria)),
	}
	for _, c := range sortCriteria {
		table.SortIcons[string(c)] = ""
	}
	if spec.Criterion.Valid() {
		table.SortIcons[string(spec.Criterion)] = spec.Direction.Icon()
	}

	if len(b.state.Options) == 0 || len(b.state.Participants) == 0 {
		table.Empty = true
		return table
	}

	for _, o := range b.sortedOptions(spec) {
		row := models.ResultRow{
			Option:  o,
			Cells:   make([]models.Cell, 0, len(b.state.Participants)),
			Summary: b.summarize(o.ID),
		}
		for _, p := range b.state.Participants {
			row.Cells = append(row.Cells, models.Cell{
				ParticipantID: p.ID,
				State:         b.state.Preferences.Get(o.ID, p.ID),
			})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
