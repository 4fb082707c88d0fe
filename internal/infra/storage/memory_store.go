package storage

import (
	"context"
	"sync"

	"veggiemarket/internal/domain/repository"
)

// memoryStore is an in-process BlobStore for tests and local development.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() repository.BlobStore {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.blobs[key]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}

	// Copy so callers cannot mutate the stored payload.
	out := make([]byte, len(payload))
	copy(out, payload)

	return out, nil
}

func (s *memoryStore) Set(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.blobs[key] = stored

	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)

	return nil
}
