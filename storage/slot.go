// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/prefgrid/cliparse"
)

var (
	ErrNotFound     = errors.New("snapshot not found")
	ErrUnknownStore = errors.New("unknown store type")
)

// Slot is a single key-value cell holding one serialized snapshot.
// Read returns ErrNotFound when nothing has been written yet.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// Open builds the slot selected by the configuration.
func Open(ctx context.Context, cfg cliparse.Config) (Slot, error) {
	switch strings.ToLower(cfg.StoreType) {
	case cliparse.StoreFile:
		return NewFileSlot(cfg.StoreURL), nil
	case cliparse.StoreMemory:
		return NewMemorySlot(), nil
	case cliparse.StoreSQLite:
		return OpenSQLSlot(ctx, DriverSQLite, cfg.StoreURL, cfg.StoreKey)
	case cliparse.StorePostgres:
		return OpenSQLSlot(ctx, DriverPostgres, cfg.StoreURL, cfg.StoreKey)
	case cliparse.StoreRedis:
		return NewRedisSlot(ctx, cfg.StoreURL, cfg.StoreKey)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.StoreType)
	}
}
