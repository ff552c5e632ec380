// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the prefgrid API server.

prefgrid records which participants like which options. Every option x
participant cell holds one of three states (unknown, on, off) and a click
advances it through that cycle. The results grid counts states per option
and sorts by name or by any of the counts.

# Starting the Server

With no configuration the server keeps its state in ./prefgrid.json:

	go run .

Or with flags:

	go run . -p 3318 -s sqlite -d prefgrid.db

A .env file in the working directory is loaded first; variables already
set in the environment win.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORE (-s): file, memory, sqlite, postgres or redis (default: file)
  - STORE_URL (-d): file path, database DSN or redis URL
    (DATABASE_URL and REDIS_URL are accepted too)
  - STORE_KEY (-k): key the snapshot is stored under
    (default: participantOptionsData)
  - LOCALE (-l): BCP 47 tag for name ordering (default: en)

# Architecture

  - board: the state owner (entities, matrix, summary and sort)
  - storage: snapshot adapter and slot backends
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, recovery, JSON helpers
  - metrics: Prometheus collectors served on GET /metrics
  - models: Domain, request and response types
  - db: SQL schema for the sqlite and postgres slots
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
