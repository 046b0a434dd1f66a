package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/waylist/internal/pagination"
)

// Default locations under the user's home directory.
const (
	appDirName     = ".waylist"
	configFileName = "config.yaml"
	logFileName    = "waylist.log"
	cacheDirName   = "cache"
)

// Environment overrides.
const (
	EnvConfigPath = "WAYLIST_CONFIG"
	EnvLogLevel   = "WAYLIST_LOG_LEVEL"
	EnvLogFormat  = "WAYLIST_LOG_FORMAT"
	EnvLogFile    = "WAYLIST_LOG_FILE"
	EnvCatalog    = "WAYLIST_CATALOG"
)

// DefaultLatency is the simulated per-page fetch delay.
const DefaultLatency = 300 * time.Millisecond

// DefaultSyntheticItems is the synthetic catalog size used when no catalog file is set.
const DefaultSyntheticItems = 200

// Config is the full waylist configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	List    ListConfig    `yaml:"list"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ListConfig controls paging and presentation of the list.
type ListConfig struct {
	Pagination     pagination.Params `yaml:"pagination"`
	ShowCollection bool              `yaml:"show_collection"`
	Latency        time.Duration     `yaml:"latency"`
}

// CatalogConfig selects the data behind the list.
type CatalogConfig struct {
	// Path is a YAML catalog file. When empty a synthetic catalog is generated.
	Path string `yaml:"path"`

	// Synthetic is the number of generated diagrams when Path is empty.
	Synthetic int `yaml:"synthetic"`
}

// CacheConfig controls the on-disk page cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// New returns a Config populated with defaults.
func New() *Config {
	home := homeDir()
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(home, appDirName, logFileName),
		},
		List: ListConfig{
			Pagination:     pagination.NewParams(),
			ShowCollection: true,
			Latency:        DefaultLatency,
		},
		Catalog: CatalogConfig{
			Synthetic: DefaultSyntheticItems,
		},
		Cache: CacheConfig{
			Enabled: false,
			Dir:     filepath.Join(home, appDirName, cacheDirName),
			TTL:     10 * time.Minute,
		},
	}
}

// DefaultPath returns the config file path, honouring WAYLIST_CONFIG.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(homeDir(), appDirName, configFileName)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	if err := c.List.Pagination.Validate(); err != nil {
		return fmt.Errorf("invalid list.pagination: %w", err)
	}
	if c.List.Latency < 0 {
		return fmt.Errorf("invalid list.latency: must be >= 0, got %s", c.List.Latency)
	}
	if c.Catalog.Path == "" && c.Catalog.Synthetic < 0 {
		return fmt.Errorf("invalid catalog.synthetic: must be >= 0, got %d", c.Catalog.Synthetic)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}
