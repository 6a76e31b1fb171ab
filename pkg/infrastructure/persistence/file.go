// Package persistence provides storage backends for the domain store
// snapshot: a plain JSON file and a SQLite database. Both satisfy the
// store.Persistence port; which one runs is a configuration choice.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the snapshot as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed snapshot store, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the saved snapshot. A missing file means no saved state.
func (f *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes the snapshot atomically via a temp file rename.
func (f *FileStore) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
