// Package s3 implements snapshot persistence against an S3-compatible
// object store. The snapshot is one JSON object; PutObject overwrites it
// whole, so the semantics are last write wins.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ThinkIshdeep/Chatur-Bazar/store"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// DefaultKey is the default object key within the bucket.
const DefaultKey = "chaturbazar/snapshot.json"

// Config configures the S3 snapshot store.
type Config struct {
	// Bucket is the bucket name (required).
	Bucket string
	// Key is the object key (default: chaturbazar/snapshot.json).
	Key string
	// Region is the AWS region (optional, uses default chain if empty).
	Region string
	// Endpoint is a custom endpoint URL for S3-compatible providers
	// (e.g. Cloudflare R2, MinIO). Empty uses the default AWS endpoint.
	Endpoint string
	// UsePathStyle forces path-style addressing (bucket in path, not
	// subdomain). Required by most S3-compatible providers.
	UsePathStyle bool
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return errors.New("s3 store requires a bucket")
	}
	return nil
}

// Store persists snapshots as a single S3 object.
type Store struct {
	config Config
	client *awss3.Client
}

// New creates an S3 snapshot store.
// Uses the AWS SDK default credential chain (env vars, shared config, IAM role).
func New(ctx context.Context, cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 store: load AWS config: %w", err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = &endpoint
		})
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	return &Store{
		config: cfg,
		client: awss3.NewFromConfig(awsCfg, s3Opts...),
	}, nil
}

// Load GETs and decodes the snapshot object.
func (s *Store) Load(ctx context.Context) (*types.Snapshot, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: &s.config.Bucket,
		Key:    &s.config.Key,
	})
	if err != nil {
		return nil, store.Wrap(err, "load", s.config.Bucket+"/"+s.config.Key)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, store.Wrap(err, "load", s.config.Bucket+"/"+s.config.Key)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("s3 store: invalid snapshot at %s: %w", s.config.Key, err)
	}
	return &snap, nil
}

// Save PUTs the snapshot object whole.
func (s *Store) Save(ctx context.Context, snap *types.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("s3 store: encode snapshot: %w", err)
	}

	contentType := "application/json"
	_, err = s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      &s.config.Bucket,
		Key:         &s.config.Key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	return store.Wrap(err, "save", s.config.Bucket+"/"+s.config.Key)
}

// Close is a no-op; the SDK client holds no resources needing release.
func (s *Store) Close() error { return nil }

// Verify Store implements the store interface.
var _ store.Store = (*Store)(nil)
