// Package redis implements snapshot persistence against a Redis key.
// The whole snapshot is written as JSON under a single key with plain SET,
// so the semantics are exactly last write wins. Retries with exponential
// backoff on connection errors.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ThinkIshdeep/Chatur-Bazar/store"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// DefaultKey is the default snapshot key.
const DefaultKey = "chaturbazar:snapshot"

// DefaultTimeout is the default per-operation timeout.
const DefaultTimeout = 5 * time.Second

// DefaultRetries is the default number of retry attempts.
const DefaultRetries = 3

// Config configures the Redis snapshot store.
type Config struct {
	// URL is the Redis connection URL (required).
	// Format: redis://[:password@]host:port[/db]
	URL string
	// Key is the snapshot key (default: chaturbazar:snapshot).
	Key string
	// Timeout is the per-operation timeout (default 5s).
	Timeout time.Duration
	// Retries is the number of retry attempts on failure (default 3).
	Retries int
}

// Store persists snapshots under a single Redis key.
type Store struct {
	config Config
	client *goredis.Client
}

// New creates a Redis snapshot store from the given config.
// Returns an error if the URL is empty or invalid.
func New(cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis store requires a URL")
	}

	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis store: invalid URL: %w", err)
	}

	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		return nil, fmt.Errorf("retries must be >= 0, got %d", cfg.Retries)
	}

	return &Store{
		config: cfg,
		client: goredis.NewClient(opts),
	}, nil
}

// Load GETs and decodes the snapshot key.
func (s *Store) Load(ctx context.Context) (*types.Snapshot, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	data, err := s.client.Get(opCtx, s.config.Key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, &store.StorageError{Kind: store.ErrNotFound, Op: "load", Path: s.config.Key, Err: err}
		}
		return nil, store.Wrap(err, "load", s.config.Key)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("redis store: invalid snapshot at %s: %w", s.config.Key, err)
	}
	return &snap, nil
}

// Save SETs the snapshot key, overwriting whatever is there.
// Retries with exponential backoff on failures.
func (s *Store) Save(ctx context.Context, snap *types.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("redis store: encode snapshot: %w", err)
	}

	var lastErr error
	// attempts = 1 initial + retries
	attempts := 1 + s.config.Retries

	for i := range attempts {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("redis store: context canceled: %w", err)
		}

		// Exponential backoff before retries (not before first attempt)
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return fmt.Errorf("redis store: context canceled during backoff: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}

		opCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		lastErr = s.client.Set(opCtx, s.config.Key, body, 0).Err()
		cancel()

		if lastErr == nil {
			return nil
		}
	}

	return store.Wrap(fmt.Errorf("failed after %d attempts: %w", attempts, lastErr), "save", s.config.Key)
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Verify Store implements the store interface.
var _ store.Store = (*Store)(nil)
