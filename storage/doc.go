// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists the board snapshot to a single key-value slot.

# Slots

A Slot holds exactly one serialized snapshot:

  - FileSlot: one JSON file, replaced atomically (default)
  - MemorySlot: process memory, for tests and throwaway sessions
  - SQLSlot: one row of kv_slot on SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq)
  - RedisSlot: one Redis key (go-redis)

Open picks the slot from configuration:

	slot, err := storage.Open(ctx, cfg)

# Adapter

The adapter loads once at start and saves after every mutation:

	adapter := storage.NewAdapter(slot)
	snap := adapter.Load(ctx)            // never fails
	err := adapter.Save(ctx, snap)       // full overwrite

Load falls back to defaults when the slot is empty or the blob is not a
JSON object. Individual fields that are absent, null, blank or mistyped
take their defaults without rejecting the rest of the blob, so snapshots
written by older builds (no title, no labels) still load. Matrix keys
that reference deleted options or participants are pruned on load.

SetObserver reports the size and outcome of every save, which the
metrics package turns into counters.
*/
package storage
