package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mj1618/winstack/internal/model"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the base directory.
const FileName = "config.yaml"

// Config holds application configuration.
type Config struct {
	// Viewport is the screen area windows are anchored within.
	Viewport model.Size `yaml:"viewport"`

	// MenuHeight is the band reserved at the top of the viewport.
	MenuHeight int `yaml:"menu_height"`

	// CascadeDistance is the per-axis offset applied when two windows share a point.
	CascadeDistance int `yaml:"cascade_distance"`

	// ArrangeLimitFactor bounds cascade moves to window count times this factor.
	ArrangeLimitFactor int `yaml:"arrange_limit_factor"`

	// Source identifies this application in window-open notifications.
	Source string `yaml:"source"`

	// Templates is an optional path to a template YAML file replacing the
	// built-in window types. Relative paths resolve against the config directory.
	Templates string `yaml:"templates,omitempty"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives plain-text logs in addition to stderr.
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Viewport:           model.Size{Width: 1280, Height: 720},
		MenuHeight:         30,
		CascadeDistance:    24,
		ArrangeLimitFactor: 4,
		Source:             "winstack",
		LogLevel:           "info",
	}
}

// DefaultDir returns ~/.winstack.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".winstack"), nil
}

// Load loads configuration from baseDir/config.yaml.
// Returns default config if the file doesn't exist.
func Load(baseDir string) (*Config, error) {
	return LoadFile(filepath.Join(baseDir, FileName))
}

// LoadFile loads configuration from a specific path, merged over defaults.
func LoadFile(path string) (*Config, error) {
	raw, err := loadFileRaw(path)
	if err != nil {
		return nil, err
	}
	cfg := Merge(DefaultConfig(), raw)
	if cfg.Templates != "" && !filepath.IsAbs(cfg.Templates) {
		cfg.Templates = filepath.Join(filepath.Dir(path), cfg.Templates)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadFileRaw returns a zero-valued config (not defaults) if the file doesn't exist.
func loadFileRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml decode config: %w", err)
	}
	return cfg, nil
}

// Merge combines base and overlay. Non-zero overlay values win.
func Merge(base, overlay *Config) *Config {
	result := *base

	if overlay.Viewport.Width != 0 {
		result.Viewport.Width = overlay.Viewport.Width
	}
	if overlay.Viewport.Height != 0 {
		result.Viewport.Height = overlay.Viewport.Height
	}
	if overlay.MenuHeight != 0 {
		result.MenuHeight = overlay.MenuHeight
	}
	if overlay.CascadeDistance != 0 {
		result.CascadeDistance = overlay.CascadeDistance
	}
	if overlay.ArrangeLimitFactor != 0 {
		result.ArrangeLimitFactor = overlay.ArrangeLimitFactor
	}
	if overlay.Source != "" {
		result.Source = overlay.Source
	}
	if overlay.Templates != "" {
		result.Templates = overlay.Templates
	}
	if overlay.LogLevel != "" {
		result.LogLevel = overlay.LogLevel
	}
	if overlay.LogFile != "" {
		result.LogFile = overlay.LogFile
	}
	return &result
}

// Validate rejects values the window manager cannot work with.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.MenuHeight <= 0 || c.MenuHeight >= c.Viewport.Height {
		return fmt.Errorf("menu_height %d must be in (0,%d)", c.MenuHeight, c.Viewport.Height)
	}
	if c.CascadeDistance <= 0 {
		return fmt.Errorf("cascade_distance must be positive, got %d", c.CascadeDistance)
	}
	if c.ArrangeLimitFactor <= 0 {
		return fmt.Errorf("arrange_limit_factor must be positive, got %d", c.ArrangeLimitFactor)
	}
	return nil
}
