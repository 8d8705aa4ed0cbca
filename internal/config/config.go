// Package config loads the YAML configuration of the idkey command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/idkey/codec"
	"gopkg.in/yaml.v3"
)

const (
	// BackendLocal stores catalogs in a local directory.
	BackendLocal = "local"
	// BackendS3 stores catalogs in an S3 bucket.
	BackendS3 = "s3"
	// BackendMinio stores catalogs in a MinIO (or other S3-compatible) bucket.
	BackendMinio = "minio"
)

// Config represents the root configuration structure.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StoreConfig selects and configures the catalog store.
type StoreConfig struct {
	// Backend is one of local, s3 or minio. Defaults to local.
	Backend string `yaml:"backend"`

	// Path is the catalog directory of the local backend.
	Path string `yaml:"path,omitempty"`

	// Bucket and Prefix address objects of the s3 and minio backends.
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`

	// Region of the s3 backend. Empty uses the SDK default chain.
	Region string `yaml:"region,omitempty"`

	// PointerTable is the DynamoDB table holding the CURRENT pointer of the
	// s3 backend. Empty keeps the pointer as an object next to the catalogs.
	PointerTable string `yaml:"pointerTable,omitempty"`

	// Endpoint, credentials and TLS of the minio backend. Values of the form
	// ${VAR} are expanded from the environment.
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"accessKey,omitempty"`
	SecretKey string `yaml:"secretKey,omitempty"`
	Secure    bool   `yaml:"secure,omitempty"`
}

// CatalogConfig controls catalog decoding and publishing.
type CatalogConfig struct {
	// Codec is the codec name. Defaults to go-json.
	Codec string `yaml:"codec,omitempty"`
	// Compression of published catalogs: none, zstd or lz4.
	Compression string `yaml:"compression,omitempty"`
	// Strict rejects catalogs with any validation problem.
	Strict bool `yaml:"strict,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error. Defaults to info.
	Level string `yaml:"level,omitempty"`
	// Format is text or json. Defaults to text.
	Format string `yaml:"format,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address of /metrics. Empty disables it.
	Addr string `yaml:"addr,omitempty"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Store:   StoreConfig{Backend: BackendLocal, Path: "."},
		Catalog: CatalogConfig{Codec: "go-json", Compression: "none"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration. Unset fields keep
// their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Store.AccessKey = os.ExpandEnv(cfg.Store.AccessKey)
	cfg.Store.SecretKey = os.ExpandEnv(cfg.Store.SecretKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is complete for its backend.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendLocal:
		if c.Store.Path == "" {
			errs = append(errs, errors.New("store.path is required for the local backend"))
		}
	case BackendS3:
		if c.Store.Bucket == "" {
			errs = append(errs, errors.New("store.bucket is required for the s3 backend"))
		}
	case BackendMinio:
		if c.Store.Bucket == "" {
			errs = append(errs, errors.New("store.bucket is required for the minio backend"))
		}
		if c.Store.Endpoint == "" {
			errs = append(errs, errors.New("store.endpoint is required for the minio backend"))
		}
		if c.Store.PointerTable != "" {
			errs = append(errs, errors.New("store.pointerTable is only supported by the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store.backend %q", c.Store.Backend))
	}

	if _, ok := codec.ByName(c.Catalog.Codec); !ok {
		errs = append(errs, fmt.Errorf("unknown catalog.codec %q (known: %s)", c.Catalog.Codec, strings.Join(codec.Names(), ", ")))
	}
	switch c.Catalog.Compression {
	case "", "none", "zstd", "lz4":
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.compression %q", c.Catalog.Compression))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log.format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}
