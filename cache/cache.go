package cache

import (
	"context"
	"encoding/json"
	"sync"
)

// Catalog caches serialized catalog listings. Misses and decode failures
// both report false so callers fall back to the database.
type Catalog interface {
	Get(ctx context.Context, key string, dst interface{}) bool
	Set(ctx context.Context, key string, v interface{}) error
	Invalidate(ctx context.Context) error
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) bool  { return false }
func (Noop) Set(context.Context, string, interface{}) error { return nil }
func (Noop) Invalidate(context.Context) error               { return nil }

// Memory is a process-local Catalog.
type Memory struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string, dst interface{}) bool {
	m.mu.Lock()
	data, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (m *Memory) Set(_ context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string][]byte)
	m.mu.Unlock()
	return nil
}

// Len reports the number of cached keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
