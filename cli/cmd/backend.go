package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ThinkIshdeep/Chatur-Bazar/cli/config"
	"github.com/ThinkIshdeep/Chatur-Bazar/store"
	filestore "github.com/ThinkIshdeep/Chatur-Bazar/store/file"
	redisstore "github.com/ThinkIshdeep/Chatur-Bazar/store/redis"
	s3store "github.com/ThinkIshdeep/Chatur-Bazar/store/s3"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// DefaultSnapshotPath is where the file backend keeps the snapshot when no
// path is configured.
const DefaultSnapshotPath = "chaturbazar.json"

// loadConfig reads the config file named by --config. A missing flag yields
// an all-defaults config; a named file that does not parse is an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

// openStore builds the snapshot store selected by the storage config.
func openStore(ctx context.Context, sc config.StorageConfig) (store.Store, error) {
	switch sc.Backend {
	case "", "file":
		path := sc.Path
		if path == "" {
			path = DefaultSnapshotPath
		}
		return filestore.New(path)

	case "redis":
		return redisstore.New(redisstore.Config{
			URL: sc.URL,
			Key: sc.Key,
		})

	case "s3":
		return s3store.New(ctx, s3store.Config{
			Bucket:       sc.Bucket,
			Key:          sc.Key,
			Region:       sc.Region,
			Endpoint:     sc.Endpoint,
			UsePathStyle: sc.S3PathStyle,
		})

	default:
		return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

// loadOrSeed loads the persisted snapshot, seeding the default catalog when
// the store has none. The bool reports whether seeding happened.
func loadOrSeed(ctx context.Context, st store.Store) (*types.Snapshot, bool, error) {
	snap, err := st.Load(ctx)
	if err == nil {
		return snap, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}
	return &types.Snapshot{Products: types.DefaultCatalog()}, true, nil
}

// loadSnapshot loads a snapshot for read-only commands. An absent snapshot
// renders the default catalog rather than erroring.
func loadSnapshot(ctx context.Context, sc config.StorageConfig) (*types.Snapshot, error) {
	st, err := openStore(ctx, sc)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	snap, _, err := loadOrSeed(ctx, st)
	return snap, err
}

// openLogWriter opens the session log file for appending. Empty path means
// the caller must not log to the terminal while the TUI owns it, so logs go
// to os.DevNull.
func openLogWriter(path string) (*os.File, error) {
	if path == "" {
		path = os.DevNull
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
