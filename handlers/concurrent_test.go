// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/prefgrid/models"
	"github.com/danielhkuo/prefgrid/testutil"
)

// TestConcurrentToggles verifies that simultaneous toggles of one cell are
// serialized: every toggle lands and each one is saved
func TestConcurrentToggles(t *testing.T) {
	b, slot := testutil.NewTestBoard(t)
	handler := NewPreferenceHandler(b)

	optID := testutil.AddTestOption(t, b, "Pizza")
	pID := testutil.AddTestParticipant(t, b, "Alice")
	writesBefore := slot.Writes()

	// A multiple of the cycle length ends back at unknown
	numToggles := 30

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for range numToggles {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/preferences/"+optID+"/"+pID+"/toggle", nil, nil)
			req.SetPathValue("optionId", optID)
			req.SetPathValue("participantId", pID)
			w := httptest.NewRecorder()

			handler.Toggle(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numToggles {
		t.Errorf("Expected %d successful toggles, got %d", numToggles, successCount.Load())
	}
	if got := b.Preference(optID, pID); got != models.StateUnknown {
		t.Errorf("Expected unknown after %d toggles, got %q", numToggles, got)
	}
	if got := slot.Writes() - writesBefore; got != numToggles {
		t.Errorf("Expected %d writes, got %d", numToggles, got)
	}
}

// TestConcurrentAdds verifies that parallel adds never lose an entity or
// hand out a duplicate id
func TestConcurrentAdds(t *testing.T) {
	b, _ := testutil.NewTestBoard(t)
	optionHandler := NewOptionHandler(b)
	participantHandler := NewParticipantHandler(b)

	numEach := 20
	var wg sync.WaitGroup

	for i := range numEach {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			optionHandler.Add(w, testutil.MakeRequest("POST", "/options", models.NameRequest{Name: fmt.Sprintf("Option %d", idx)}, nil))
		}(i)
		go func(idx int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			participantHandler.Add(w, testutil.MakeRequest("POST", "/participants", models.NameRequest{Name: fmt.Sprintf("Person %d", idx)}, nil))
		}(i)
	}

	wg.Wait()

	snap := b.Snapshot()
	if len(snap.Options) != numEach {
		t.Errorf("Expected %d options, got %d", numEach, len(snap.Options))
	}
	if len(snap.Participants) != numEach {
		t.Errorf("Expected %d participants, got %d", numEach, len(snap.Participants))
	}

	for _, list := range [][]models.Entity{snap.Options, snap.Participants} {
		seen := make(map[string]bool, len(list))
		for _, e := range list {
			if seen[e.ID] {
				t.Errorf("Duplicate id %s", e.ID)
			}
			seen[e.ID] = true
		}
	}
}

// TestConcurrentDeleteAndToggle verifies that a delete racing toggles leaves
// no orphaned matrix entries behind
func TestConcurrentDeleteAndToggle(t *testing.T) {
	b, _ := testutil.NewTestBoard(t)
	prefHandler := NewPreferenceHandler(b)
	participantHandler := NewParticipantHandler(b)

	optIDs := make([]string, 5)
	for i := range optIDs {
		optIDs[i] = testutil.AddTestOption(t, b, fmt.Sprintf("Option %d", i))
	}
	pID := testutil.AddTestParticipant(t, b, "Alice")

	var wg sync.WaitGroup
	for _, optID := range optIDs {
		wg.Add(1)
		go func(optID string) {
			defer wg.Done()
			for range 10 {
				req := testutil.MakeRequest("POST", "/preferences/"+optID+"/"+pID+"/toggle", nil, nil)
				req.SetPathValue("optionId", optID)
				req.SetPathValue("participantId", pID)
				prefHandler.Toggle(httptest.NewRecorder(), req)
			}
		}(optID)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		req := testutil.MakeRequest("DELETE", "/participants/"+pID+"?confirm=true", nil, nil)
		req.SetPathValue("id", pID)
		participantHandler.Delete(httptest.NewRecorder(), req)
	}()

	wg.Wait()

	snap := b.Snapshot()
	if len(snap.Participants) != 0 {
		t.Fatalf("Expected participant deleted, got %+v", snap.Participants)
	}
	for optID, row := range snap.Preferences {
		if _, ok := row[pID]; ok {
			t.Errorf("Row %s references the deleted participant", optID)
		}
	}
}
