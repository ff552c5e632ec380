// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /board", middleware.WithLogging(handler))

Logs method, path, client address, status and duration_ms on completion.

# Request Metrics

WithMetrics wraps the whole mux and labels each request with the matched
route pattern, so ids in paths never become label values:

	handler := middleware.WithMetrics(m, mux)

# Panic Recovery

	server := http.Server{
		Handler: middleware.Stack(m, mux),
	}

A panicking handler answers 500 instead of killing the process.

# CORS Middleware

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers Content-Type
and X-Confirm-Delete. Preflight requests answer 204.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.NameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. Used in request logs.
*/
package middleware
