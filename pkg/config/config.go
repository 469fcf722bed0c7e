package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/izapata/iconsmith/internal/core/domain"
)

type Config struct {
	Source    string              `yaml:"source"`
	PublicDir string              `yaml:"public_dir"`
	Presets   []domain.SizePreset `yaml:"presets"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Source:          domain.DefaultSourcePath,
		PublicDir:       "public",
		Presets:         domain.DefaultPresets(),
		WatchDebounceMS: 300,
		ColorTheme:      "auto",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A presets key in the file replaces the default table wholesale
	cfg.Presets = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.Source == "" {
		cfg.Source = domain.DefaultSourcePath
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = domain.DefaultPresets()
	}
	for i := range cfg.Presets {
		if cfg.Presets[i].Format == "" {
			cfg.Presets[i].Format = domain.FormatPNG
		}
		if cfg.Presets[i].Rel == "" {
			cfg.Presets[i].Rel = "icon"
		}
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 300
	}
	if !isValidColorTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	if err := domain.ValidatePresets(cfg.Presets); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidColorTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
