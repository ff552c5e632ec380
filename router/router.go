// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/handlers"
	"github.com/danielhkuo/prefgrid/metrics"
	"github.com/danielhkuo/prefgrid/middleware"
)

// NewRouter registers every endpoint. GET /metrics is only served when m is
// non-nil.
func NewRouter(b *board.Board, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	boardHandler := handlers.NewBoardHandler(b)
	optionHandler := handlers.NewOptionHandler(b)
	participantHandler := handlers.NewParticipantHandler(b)
	preferenceHandler := handlers.NewPreferenceHandler(b)
	resultsHandler := handlers.NewResultsHandler(b)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Whole state, labels and layout
	mux.HandleFunc("GET /board", middleware.WithLogging(boardHandler.GetBoard))
	mux.HandleFunc("PUT /labels/{field}", middleware.WithLogging(boardHandler.SetLabel))
	mux.HandleFunc("POST /sections/toggle", middleware.WithLogging(boardHandler.ToggleSections))

	// Options
	mux.HandleFunc("POST /options", middleware.WithLogging(optionHandler.Add))
	mux.HandleFunc("PUT /options/{id}", middleware.WithLogging(optionHandler.Edit))
	mux.HandleFunc("DELETE /options/{id}", middleware.WithLogging(optionHandler.Delete))
	mux.HandleFunc("GET /options/{id}/summary", middleware.WithLogging(resultsHandler.GetSummary))

	// Participants
	mux.HandleFunc("POST /participants", middleware.WithLogging(participantHandler.Add))
	mux.HandleFunc("PUT /participants/{id}", middleware.WithLogging(participantHandler.Edit))
	mux.HandleFunc("DELETE /participants/{id}", middleware.WithLogging(participantHandler.Delete))

	// Preference matrix
	mux.HandleFunc("GET /preferences/{optionId}/{participantId}", middleware.WithLogging(preferenceHandler.GetPreference))
	mux.HandleFunc("POST /preferences/{optionId}/{participantId}/toggle", middleware.WithLogging(preferenceHandler.Toggle))

	// Results grid
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("POST /results/sort", middleware.WithLogging(resultsHandler.ClickSort))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("prefgrid API v1"))
	})

	return mux
}
