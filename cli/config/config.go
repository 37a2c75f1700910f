package config

import (
	"fmt"
	"time"
)

// Config represents a chaturbazar.yaml configuration file.
// All values are optional and act as defaults for chaturbazar sell flags.
// CLI flags always override config values.
type Config struct {
	// Terminal is the till name carried on logs and metrics.
	Terminal string `yaml:"terminal"`
	// Currency is the symbol used by the presentation layer.
	Currency string `yaml:"currency"`
	// Journal is the session journal file path. Empty disables journaling.
	Journal string `yaml:"journal"`
	// LogFile is the session log path. Empty logs to stderr (not
	// usable while the TUI owns the terminal).
	LogFile string `yaml:"log_file"`

	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Adapter AdapterConfig `yaml:"adapter"`
}

// InputConfig tunes the classifier and the streak. Zero values select the
// built-in defaults; production tills have no reason to change these.
type InputConfig struct {
	// VelocityThreshold is the maximum inter-keystroke gap treated as
	// scanner-paced.
	VelocityThreshold Duration `yaml:"velocity_threshold"`
	// StreakWindow is how long the streak survives without an add.
	StreakWindow Duration `yaml:"streak_window"`
}

// StorageConfig selects and configures the snapshot store.
type StorageConfig struct {
	// Backend is one of "file", "redis", "s3". Default file.
	Backend string `yaml:"backend"`
	// Path is the snapshot file path (file backend).
	Path string `yaml:"path"`
	// URL is the Redis connection URL (redis backend).
	URL string `yaml:"url"`
	// Key overrides the default snapshot key (redis backend).
	Key string `yaml:"key,omitempty"`
	// Bucket is the bucket name (s3 backend).
	Bucket string `yaml:"bucket"`
	// Region is the AWS region (s3 backend).
	Region string `yaml:"region,omitempty"`
	// Endpoint is a custom endpoint for S3-compatible providers.
	Endpoint string `yaml:"endpoint,omitempty"`
	// S3PathStyle forces path-style addressing.
	S3PathStyle bool `yaml:"s3_path_style,omitempty"`
}

// AdapterConfig configures the outbound messaging adapter.
type AdapterConfig struct {
	// Type is "webhook" or empty for none.
	Type    string            `yaml:"type"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Timeout Duration          `yaml:"timeout,omitempty"`
	Retries *int              `yaml:"retries,omitempty"`
}

// Duration wraps time.Duration for YAML string parsing (e.g. "50ms", "3s").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "50ms" or "3s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// Validate checks cross-field consistency that YAML decoding cannot.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "", "file":
	case "redis":
		if c.Storage.URL == "" {
			return fmt.Errorf("storage backend redis requires url")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage backend s3 requires bucket")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Adapter.Type {
	case "", "webhook":
	default:
		return fmt.Errorf("unknown adapter type %q", c.Adapter.Type)
	}
	if c.Adapter.Type == "webhook" && c.Adapter.URL == "" {
		return fmt.Errorf("adapter type webhook requires url")
	}
	return nil
}
