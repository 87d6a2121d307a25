// Package memory provides a process-local ports.BlobStorage. Nothing survives
// a restart; it backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"restaurant/internal/core/ports"
)

type BlobStorage struct {
	mu    sync.RWMutex
	blobs map[ports.Key][]byte
}

var _ ports.BlobStorage = (*BlobStorage)(nil)

func NewBlobStorage() *BlobStorage {
	return &BlobStorage{blobs: make(map[ports.Key][]byte)}
}

func (s *BlobStorage) Load(_ context.Context, key ports.Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (s *BlobStorage) Save(_ context.Context, key ports.Key, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}
