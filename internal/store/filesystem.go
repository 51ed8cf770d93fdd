package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemStore persists each key as one JSON file under a root
// directory. Writes go through a temp file plus rename so a crash never
// leaves a partially written collection behind.
type FileSystemStore struct {
	root string
}

// NewFileSystemStore creates a store rooted at the given directory,
// creating it if needed.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileSystemStore{root: root}, nil
}

func (s *FileSystemStore) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

// Get reads the blob stored under key. A missing file means the key has
// never been written.
func (s *FileSystemStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put atomically replaces the blob stored under key.
func (s *FileSystemStore) Put(key string, data []byte) error {
	// Temp file in the same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(s.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	success = true
	return nil
}

func (s *FileSystemStore) Close() error { return nil }
