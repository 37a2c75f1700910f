// Package store defines the catalog persistence boundary. The engine hands
// a full snapshot to a Store after every mutation; the store writes it
// verbatim, last write wins. On startup the core loads the last snapshot or
// seeds the default catalog when none exists.
package store

import (
	"context"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// Store persists session snapshots.
// Implementations must be safe for use from a single session loop.
type Store interface {
	// Load returns the last persisted snapshot.
	// Returns ErrNotFound when no snapshot has been written yet.
	Load(ctx context.Context) (*types.Snapshot, error)

	// Save overwrites the persisted snapshot.
	Save(ctx context.Context, snap *types.Snapshot) error

	// Close releases store resources.
	Close() error
}
