package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is looked up next to the CSV file and in the working directory.
const FileName = ".csvgrip.toml"

// Config represents the application configuration
type Config struct {
	// Delimiter overrides sniffing when set to a single character.
	Delimiter string `toml:"delimiter"`
	// HasHeader overrides header detection when set.
	HasHeader *bool `toml:"has_header"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	// MaxColWidth caps content-fit column widths.
	MaxColWidth int `toml:"max_col_width"`
	// RowCacheSize bounds the number of parsed rows kept in memory.
	RowCacheSize int `toml:"row_cache_size"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UISettings: UISettings{
			MaxColWidth:  25,
			RowCacheSize: 1024,
		},
	}
}

// Load reads the config next to the given CSV file, falling back to the
// working directory, falling back to defaults. A missing file is not an
// error; a malformed one is.
func Load(csvPath string) (*Config, error) {
	candidates := []string{
		filepath.Join(filepath.Dir(csvPath), FileName),
		FileName,
	}
	for _, path := range candidates {
		cfg, err := LoadFromPath(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// LoadFromPath loads configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func SaveToPath(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if len(c.Delimiter) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.UISettings.MaxColWidth < 1 {
		return fmt.Errorf("max_col_width must be at least 1")
	}
	if c.UISettings.RowCacheSize < 1 {
		return fmt.Errorf("row_cache_size must be at least 1")
	}
	return nil
}
