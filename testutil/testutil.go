// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/cliparse"
	"github.com/danielhkuo/prefgrid/models"
	"github.com/danielhkuo/prefgrid/storage"
	"golang.org/x/text/language"
)

// GetTestConfig returns a config for the in-memory store
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      cliparse.DefaultPort,
		StoreType: cliparse.StoreMemory,
		StoreKey:  cliparse.DefaultKey,
		Locale:    language.English,
	}
}

// NewTestBoard creates an empty board backed by a memory slot. The slot is
// returned so tests can count writes or inject failures.
func NewTestBoard(t *testing.T) (*board.Board, *storage.MemorySlot) {
	t.Helper()

	slot := storage.NewMemorySlot()
	adapter := storage.NewAdapter(slot)
	t.Cleanup(func() { adapter.Close() })

	b := board.New(adapter.Load(context.Background()), adapter, language.English)
	return b, slot
}

// AddTestOption adds an option directly on the board and returns its id
func AddTestOption(t *testing.T, b *board.Board, name string) string {
	t.Helper()

	o, applied, err := b.AddOption(context.Background(), name)
	if err != nil || !applied {
		t.Fatalf("Failed to add option %q: applied=%v err=%v", name, applied, err)
	}
	return o.ID
}

// AddTestParticipant adds a participant directly on the board and returns its id
func AddTestParticipant(t *testing.T, b *board.Board, name string) string {
	t.Helper()

	p, applied, err := b.AddParticipant(context.Background(), name)
	if err != nil || !applied {
		t.Fatalf("Failed to add participant %q: applied=%v err=%v", name, applied, err)
	}
	return p.ID
}

// SetTestPreference toggles a cell until it reaches the wanted state
func SetTestPreference(t *testing.T, b *board.Board, optionID, participantID string, want models.State) {
	t.Helper()

	for range 3 {
		if b.Preference(optionID, participantID) == want {
			return
		}
		if _, _, err := b.Toggle(context.Background(), optionID, participantID); err != nil {
			t.Fatalf("Failed to toggle preference: %v", err)
		}
	}
	t.Fatalf("Preference never reached %q", want)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
