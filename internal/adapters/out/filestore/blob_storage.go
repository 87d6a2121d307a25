// Package filestore keeps each persisted structure in its own JSON file
// under a data directory.
package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"restaurant/internal/core/ports"
)

// BlobStorage writes <dir>/<key>.json. Saves go through a temporary file
// and a rename so a crash never leaves a truncated document behind.
type BlobStorage struct {
	mu  sync.Mutex
	dir string
}

var _ ports.BlobStorage = (*BlobStorage)(nil)

func NewBlobStorage(dir string) (*BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &BlobStorage{dir: dir}, nil
}

func (s *BlobStorage) Load(_ context.Context, key ports.Key) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *BlobStorage) Save(_ context.Context, key ports.Key, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	temp := path + ".tmp"
	if err := os.WriteFile(temp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(temp, path)
}

func (s *BlobStorage) path(key ports.Key) string {
	return filepath.Join(s.dir, string(key)+".json")
}
