// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL storage slot.

# Schema Creation

CreateSchema initializes the snapshot table:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_slot: key, value (snapshot JSON), updated_at

One row per storage key. The board writes the whole snapshot on every
mutation, so the row is overwritten rather than appended.

The same DDL runs on SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq).
*/
package db
