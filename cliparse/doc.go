// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: file, memory, sqlite, postgres or redis (default: file)
  - StoreURL: file path, database DSN or redis URL (default: prefgrid.json for file)
  - StoreKey: key the snapshot is stored under (default: participantOptionsData)
  - Locale: language tag used for name ordering (default: en)

# CLI Flags

	-p  Server port
	-s  Store type
	-d  Store location
	-k  Storage key
	-l  Locale

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	STORE      → -s
	STORE_URL  → -d (DATABASE_URL for sqlite/postgres, REDIS_URL for redis)
	STORE_KEY  → -k
	LOCALE     → -l

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; variables already set win.

# Validation

ParseFlags returns an error when:

  - PORT is not a number
  - the store type is unknown
  - sqlite/postgres/redis is selected without a location
  - the locale is not a valid BCP 47 tag

# Example

	// In main.go
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	slot, err := storage.Open(ctx, cfg)
	// ...
*/
package cliparse
