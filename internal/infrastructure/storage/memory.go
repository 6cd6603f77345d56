package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryBlobStore keeps attachment blobs in process memory. It backs the
// "memory" storage driver and the tests.
type MemoryBlobStore struct {
	mu       sync.RWMutex
	maxBytes int64
	blobs    map[string][]byte
}

func NewMemoryBlobStore(maxBytes int64) *MemoryBlobStore {
	return &MemoryBlobStore{
		maxBytes: maxBytes,
		blobs:    map[string][]byte{},
	}
}

func (s *MemoryBlobStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	if err := checkSize(size, s.maxBytes); err != nil {
		return "", err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment content: %w", err)
	}
	if err := checkSize(int64(len(data)), s.maxBytes); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()

	return "memory://" + key, nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}

// Get is only used by tests to inspect stored content.
func (s *MemoryBlobStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	return data, ok
}
