// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/danielhkuo/prefgrid/cliparse"
	"github.com/danielhkuo/prefgrid/models"
)

// exerciseSlot checks the contract every slot must honor.
func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	if _, err := slot.Read(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty slot, got %v", err)
	}

	first := []byte(`{"title":"first"}`)
	if err := slot.Write(ctx, first); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := slot.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Errorf("expected %s, got %s", first, got)
	}

	second := []byte(`{"title":"second"}`)
	if err := slot.Write(ctx, second); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err = slot.Read(ctx)
	if err != nil {
		t.Fatalf("Read after overwrite failed: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("expected %s, got %s", second, got)
	}
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()
	exerciseSlot(t, slot)
	if slot.Writes() != 2 {
		t.Errorf("expected 2 writes, got %d", slot.Writes())
	}
}

func TestFileSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefgrid.json")
	slot := NewFileSlot(path)
	exerciseSlot(t, slot)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, got %d entries", len(entries))
	}
}

func TestFileSlot_EmptyFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileSlot(path).Read(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLSlot_SQLite(t *testing.T) {
	slot, err := OpenSQLSlot(context.Background(), DriverSQLite, ":memory:", models.DefaultStorageKey)
	if err != nil {
		t.Fatalf("OpenSQLSlot failed: %v", err)
	}
	defer slot.Close()

	exerciseSlot(t, slot)
}

func TestSQLSlot_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	slot, err := OpenSQLSlot(ctx, DriverSQLite, ":memory:", "board-a")
	if err != nil {
		t.Fatalf("OpenSQLSlot failed: %v", err)
	}
	defer slot.Close()

	other := NewSQLSlot(slot.db, "board-b")
	if err := slot.Write(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := other.Read(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected other key to be empty, got %v", err)
	}
}

func TestSQLSlot_Postgres(t *testing.T) {
	dsn := os.Getenv("PREFGRID_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("PREFGRID_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	slot, err := OpenSQLSlot(ctx, DriverPostgres, dsn, "prefgrid-test")
	if err != nil {
		t.Fatalf("OpenSQLSlot failed: %v", err)
	}
	defer slot.Close()
	if _, err := slot.db.ExecContext(ctx, `DELETE FROM kv_slot WHERE key = $1`, "prefgrid-test"); err != nil {
		t.Fatalf("Failed to clean kv_slot: %v", err)
	}

	exerciseSlot(t, slot)
}

func TestRedisSlot(t *testing.T) {
	s := miniredis.RunT(t)

	slot, err := NewRedisSlot(context.Background(), "redis://"+s.Addr(), models.DefaultStorageKey)
	if err != nil {
		t.Fatalf("NewRedisSlot failed: %v", err)
	}
	defer slot.Close()

	exerciseSlot(t, slot)

	if ttl := s.TTL(models.DefaultStorageKey); ttl != 0 {
		t.Errorf("expected no expiry, got %v", ttl)
	}
}

func TestNewRedisSlot_BadURL(t *testing.T) {
	if _, err := NewRedisSlot(context.Background(), "not-a-url", "k"); err == nil {
		t.Error("expected error for invalid redis url")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     cliparse.Config
		wantErr bool
	}{
		{name: "file", cfg: cliparse.Config{StoreType: cliparse.StoreFile, StoreURL: filepath.Join(t.TempDir(), "s.json")}},
		{name: "memory", cfg: cliparse.Config{StoreType: cliparse.StoreMemory}},
		{name: "sqlite", cfg: cliparse.Config{StoreType: cliparse.StoreSQLite, StoreURL: ":memory:", StoreKey: "k"}},
		{name: "redis", cfg: cliparse.Config{StoreType: cliparse.StoreRedis, StoreURL: "redis://" + s.Addr(), StoreKey: "k"}},
		{name: "unknown", cfg: cliparse.Config{StoreType: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := Open(ctx, tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStore) {
					t.Errorf("expected ErrUnknownStore, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer slot.Close()
			exerciseSlot(t, slot)
		})
	}
}
