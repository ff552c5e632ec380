// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the prefgrid API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(b, m)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics - Prometheus exposition (only when m is non-nil)

Board:

	GET  /board            - Full snapshot
	PUT  /labels/{field}   - Edit title, subtitle, options or participants label
	POST /sections/toggle  - Collapse or expand the management sections

Options and participants:

	POST   /options             - Add
	PUT    /options/{id}        - Rename
	DELETE /options/{id}        - Delete (confirm=true or X-Confirm-Delete)
	GET    /options/{id}/summary - State counts
	POST   /participants        - Add
	PUT    /participants/{id}   - Rename
	DELETE /participants/{id}   - Delete (confirm=true or X-Confirm-Delete)

Preferences:

	GET  /preferences/{optionId}/{participantId}        - Current state
	POST /preferences/{optionId}/{participantId}/toggle - Advance the cycle

Results:

	GET  /results?sort=&order= - Grid in display order
	POST /results/sort         - Header click

# Handler Initialization

All handlers share the single board:

	optionHandler := handlers.NewOptionHandler(b)
	participantHandler := handlers.NewParticipantHandler(b)
*/
package router
