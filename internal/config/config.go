package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Themes accepted by the theme setting. They double as glamour style names.
var Themes = []string{"dark", "light", "notty"}

// Config holds CLI configuration stored at ~/.vlist/config.
type Config struct {
	APIKey     string `yaml:"api_key,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	Theme      string `yaml:"theme"`
	VimKeys    bool   `yaml:"vim_keys"`
	Overscan   int    `yaml:"overscan"`
	Gap        int    `yaml:"gap"`
	ItemHeight int    `yaml:"item_height"`
	Markdown   bool   `yaml:"markdown"`
	FrameRate  int    `yaml:"frame_rate"`
	LogFile    string `yaml:"log_file,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Theme:     "dark",
		VimKeys:   true,
		Overscan:  3,
		FrameRate: 60,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vlist", "config")
}

// Load reads and parses the config file. Fields missing from the file keep
// their defaults. Returns an error if the file is missing, readable by
// others, or invalid.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Overscan < 0 {
		return fmt.Errorf("invalid config: overscan must be >= 0, got %d", c.Overscan)
	}
	if c.Gap < 0 {
		return fmt.Errorf("invalid config: gap must be >= 0, got %d", c.Gap)
	}
	if c.ItemHeight < 0 {
		return fmt.Errorf("invalid config: item_height must be >= 0, got %d", c.ItemHeight)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("invalid config: frame_rate must be in [1, 240], got %d", c.FrameRate)
	}
	for _, theme := range Themes {
		if c.Theme == theme {
			return nil
		}
	}
	return fmt.Errorf("invalid config: unknown theme %q", c.Theme)
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
