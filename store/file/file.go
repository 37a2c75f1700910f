// Package file implements snapshot persistence as a JSON file on disk.
// Writes go to a temp file in the same directory followed by a rename, so a
// crash mid-write can never leave a torn snapshot.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThinkIshdeep/Chatur-Bazar/store"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// Store persists snapshots to a single JSON file.
type Store struct {
	path string
}

// New creates a file store at the given path. Parent directories are
// created on the first Save.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file store requires a path")
	}
	return &Store{path: path}, nil
}

// Load reads and decodes the snapshot file.
func (s *Store) Load(_ context.Context) (*types.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &store.StorageError{Kind: store.ErrNotFound, Op: "load", Path: s.path, Err: err}
		}
		return nil, store.Wrap(err, "load", s.path)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("file store: invalid snapshot %s: %w", s.path, err)
	}
	return &snap, nil
}

// Save writes the snapshot atomically: temp file, fsync, rename.
func (s *Store) Save(_ context.Context, snap *types.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return store.Wrap(err, "save", s.path)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("file store: encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return store.Wrap(err, "save", s.path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return store.Wrap(err, "save", s.path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return store.Wrap(err, "save", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return store.Wrap(err, "save", s.path)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return store.Wrap(err, "save", s.path)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *Store) Close() error { return nil }

// Verify Store implements the store interface.
var _ store.Store = (*Store)(nil)
