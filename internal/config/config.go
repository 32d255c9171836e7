package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"parkgrip/internal/provider"
)

// DefaultFileName is looked up in the working directory when no --config is given
const DefaultFileName = ".parkgrip.toml"

const (
	defaultSource  = "parks.json"
	defaultTimeout = 10 * time.Second
	defaultLogFile = "parkgrip.log"
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	Source      string     `toml:"source"`       // URL or path of the park dataset
	RecordsPath string     `toml:"records_path"` // optional JSONPath selecting the record array
	Timeout     string     `toml:"timeout"`      // duration string, e.g. "10s"
	LogFile     string     `toml:"log_file"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title         string `toml:"title"`
	City          string `toml:"city"` // shown as "Parks in <city>"
	ShowAmenities bool   `toml:"show_amenities"`
}

// ErrInvalidTimeout is returned by Validate when timeout cannot be parsed
var ErrInvalidTimeout = errors.New("invalid timeout")

// FetchTimeout returns the parsed timeout, falling back to the default when unset
func (c *Config) FetchTimeout() time.Duration {
	if c.Timeout == "" {
		return defaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// Validate checks fields that would otherwise fail late
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidTimeout, c.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w %q: must be positive", ErrInvalidTimeout, c.Timeout)
		}
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	LoadOrDefault(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Relative sources are resolved against the config file's directory
	if cfg.Source != "" && provider.IsFileSource(cfg.Source) && !filepath.IsAbs(cfg.Source) {
		cfg.Source = filepath.Join(filepath.Dir(path), cfg.Source)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists and returns defaults otherwise.
// Any other failure (unreadable, malformed) is returned.
func (cs *configService) LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Source:  defaultSource,
		Timeout: defaultTimeout.String(),
		LogFile: defaultLogFile,
		UISettings: UISettings{
			Title:         "Local Park Explorer",
			ShowAmenities: true,
		},
	}
}
