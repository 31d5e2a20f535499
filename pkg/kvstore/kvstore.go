// Package kvstore provides the durable key-value store the offer bank
// persists into. The contract is deliberately minimal: get a string by key,
// set a string by key. Backends: in-memory, file, Redis, Postgres.
package kvstore

import (
	"context"
	"sync"
)

// Store is the persistence contract. Get reports whether the key was
// present; an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is a mutex-guarded map. It is the default backend for tests and
// loses everything on process exit.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
