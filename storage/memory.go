// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"sync"
)

// MemorySlot keeps the snapshot in process memory. Used by tests and by
// `-s memory` for throwaway sessions.
type MemorySlot struct {
	mu       sync.Mutex
	data     []byte
	writes   int
	writeErr error
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith seeds the slot with an existing blob.
func NewMemorySlotWith(data []byte) *MemorySlot {
	return &MemorySlot{data: append([]byte(nil), data...)}
}

func (s *MemorySlot) Read(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = append([]byte(nil), data...)
	s.writes++
	return nil
}

func (s *MemorySlot) Close() error { return nil }

// Writes returns how many successful writes the slot has seen.
func (s *MemorySlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// FailWrites makes every following Write return err. Pass nil to recover.
func (s *MemorySlot) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}
