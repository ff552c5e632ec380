// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exports Prometheus collectors for the prefgrid server.

	m := metrics.New()
	adapter.SetObserver(m)
	handler := middleware.WithMetrics(m, mux)

Collected series:

	prefgrid_http_requests_total{method,route,status}
	prefgrid_http_request_duration_seconds{route}
	prefgrid_snapshot_saves_total{result}
	prefgrid_snapshot_bytes

The route label is the matched ServeMux pattern ("unmatched" when nothing
matched). Go runtime and process collectors are registered as well.
*/
package metrics
