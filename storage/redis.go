// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the snapshot under a single Redis key with no expiry.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot parses redisURL and verifies the connection.
func NewRedisSlot(ctx context.Context, redisURL, key string) (*RedisSlot, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisSlotWithClient(client, key), nil
}

// NewRedisSlotWithClient creates a slot from an existing client
func NewRedisSlotWithClient(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

func (s *RedisSlot) Close() error {
	return s.client.Close()
}
