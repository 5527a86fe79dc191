package cartblob

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory keeps blobs in a process-local map. Used by tests and as a
// fallback when no durable storage is configured.
func NewMemory() Storage {
	return &memoryStorage{blobs: make(map[string][]byte)}
}

func (s *memoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

func (s *memoryStorage) Save(_ context.Context, key string, blob []byte) error {
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.mu.Lock()
	s.blobs[key] = cp
	s.mu.Unlock()
	return nil
}

func (s *memoryStorage) Ping(_ context.Context) error {
	return nil
}
