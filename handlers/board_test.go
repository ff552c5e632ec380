// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/prefgrid/models"
	"github.com/danielhkuo/prefgrid/testutil"
)

func TestGetBoard(t *testing.T) {
	b, _ := testutil.NewTestBoard(t)
	handler := NewBoardHandler(b)

	optID := testutil.AddTestOption(t, b, "Pizza")
	pID := testutil.AddTestParticipant(t, b, "Alice")
	testutil.SetTestPreference(t, b, optID, pID, models.StateAffirmative)

	w := httptest.NewRecorder()
	handler.GetBoard(w, testutil.MakeRequest("GET", "/board", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.Snapshot
	testutil.AssertJSON(t, w, &snap)

	if len(snap.Options) != 1 || snap.Options[0].Name != "Pizza" {
		t.Errorf("Expected one option Pizza, got %+v", snap.Options)
	}
	if len(snap.Participants) != 1 || snap.Participants[0].Name != "Alice" {
		t.Errorf("Expected one participant Alice, got %+v", snap.Participants)
	}
	if snap.Preferences.Get(optID, pID) != models.StateAffirmative {
		t.Errorf("Expected on, got %q", snap.Preferences.Get(optID, pID))
	}
	if snap.Title != models.DefaultTitle {
		t.Errorf("Expected default title, got %q", snap.Title)
	}
}

func TestSetLabel(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		value          string
		expectedStatus int
		expectApplied  bool
		check          func(t *testing.T, snap models.Snapshot)
	}{
		{
			name:           "title",
			field:          models.LabelTitle,
			value:          "Team Lunch",
			expectedStatus: http.StatusOK,
			expectApplied:  true,
			check: func(t *testing.T, snap models.Snapshot) {
				if snap.Title != "Team Lunch" {
					t.Errorf("Expected title 'Team Lunch', got %q", snap.Title)
				}
			},
		},
		{
			name:           "options label",
			field:          models.LabelOptions,
			value:          "Restaurants",
			expectedStatus: http.StatusOK,
			expectApplied:  true,
			check: func(t *testing.T, snap models.Snapshot) {
				if snap.OptionsLabel != "Restaurants" {
					t.Errorf("Expected options label 'Restaurants', got %q", snap.OptionsLabel)
				}
			},
		},
		{
			name:           "blank value ignored",
			field:          models.LabelSubtitle,
			value:          "  ",
			expectedStatus: http.StatusOK,
			expectApplied:  false,
			check: func(t *testing.T, snap models.Snapshot) {
				if snap.Subtitle != models.DefaultSubtitle {
					t.Errorf("Expected default subtitle, got %q", snap.Subtitle)
				}
			},
		},
		{
			name:           "unknown field",
			field:          "footer",
			value:          "x",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := testutil.NewTestBoard(t)
			handler := NewBoardHandler(b)

			req := testutil.MakeRequest("PUT", "/labels/"+tt.field, models.LabelRequest{Value: tt.value}, nil)
			req.SetPathValue("field", tt.field)
			w := httptest.NewRecorder()

			handler.SetLabel(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.LabelResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Applied != tt.expectApplied {
				t.Errorf("Expected applied=%v, got %v", tt.expectApplied, resp.Applied)
			}
			tt.check(t, b.Snapshot())
		})
	}
}

func TestToggleSections(t *testing.T) {
	b, slot := testutil.NewTestBoard(t)
	handler := NewBoardHandler(b)

	for i, want := range []bool{true, false, true} {
		w := httptest.NewRecorder()
		handler.ToggleSections(w, testutil.MakeRequest("POST", "/sections/toggle", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SectionsResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.SectionsCollapsed != want {
			t.Errorf("Toggle %d: expected collapsed=%v, got %v", i+1, want, resp.SectionsCollapsed)
		}
	}

	if slot.Writes() != 3 {
		t.Errorf("Expected 3 writes, got %d", slot.Writes())
	}
}
