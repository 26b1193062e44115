package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps collections in process memory.
type MemoryBackend struct {
	mu          sync.RWMutex
	collections map[Collection][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{collections: make(map[Collection][]byte)}
}

func (b *MemoryBackend) ReadCollection(ctx context.Context, name Collection) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	payload, ok := b.collections[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), payload...), nil
}

func (b *MemoryBackend) WriteCollection(ctx context.Context, name Collection, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.collections[name] = append([]byte(nil), payload...)
	return nil
}
