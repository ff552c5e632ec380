// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/prefgrid/db"
)

// database/sql driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLSlot stores the snapshot as one row of the kv_slot table.
type SQLSlot struct {
	db  *sql.DB
	key string
}

// NewSQLSlot wraps an open connection. The schema must already exist.
func NewSQLSlot(conn *sql.DB, key string) *SQLSlot {
	return &SQLSlot{db: conn, key: key}
}

// OpenSQLSlot connects, verifies the connection and creates the schema.
func OpenSQLSlot(ctx context.Context, driver, dsn, key string) (*SQLSlot, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One writer; also keeps ":memory:" databases on a single connection.
		conn.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := db.CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLSlot(conn, key), nil
}

func (s *SQLSlot) Read(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM kv_slot WHERE key = $1
	`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLSlot) Write(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_slot (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (s *SQLSlot) Close() error {
	return s.db.Close()
}
