package store

import (
	"context"
	"sync"
)

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return newBlobStore(&memoryKV{blobs: map[string][]byte{}}) }

type memoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *memoryKV) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blobs[key] = cp
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *memoryKV) Close() error { return nil }
