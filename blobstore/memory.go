package blobstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a new in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Get returns a copy of the object.
func (m *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

// Put writes an object.
func (m *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[name] = slices.Clone(data)
	return nil
}

// Delete removes an object.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)
	return nil
}

// List returns all objects matching the prefix.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// MemoryPointerStore is an in-memory PointerStore.
type MemoryPointerStore struct {
	mu      sync.Mutex
	current *Pointer
}

// NewMemoryPointerStore creates an empty pointer store.
func NewMemoryPointerStore() *MemoryPointerStore {
	return &MemoryPointerStore{}
}

// Current returns the latest pointer.
func (m *MemoryPointerStore) Current(_ context.Context) (Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Pointer{}, ErrNotFound
	}
	return *m.current, nil
}

// Commit stores p if it directly follows the current version.
func (m *MemoryPointerStore) Commit(_ context.Context, p Pointer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var version uint64
	if m.current != nil {
		version = m.current.Version
	}
	if p.Version != version+1 {
		return ErrConcurrentModification
	}
	m.current = &p
	return nil
}
