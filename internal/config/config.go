// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vishal2376/rio-editor/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	DefaultFile     string `toml:"default_file"` // Auto-loaded at startup when set
	ThemeFile       string `toml:"theme_file"`   // Optional TOML theme override
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// DefaultPath returns the default config file location, or "" when the
// user config dir cannot be determined.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// Load builds the effective configuration: defaults, then the TOML file
// at path (missing file is fine), then validation. Flag overrides are
// applied by the caller afterwards.
func Load(path string) (*Config, error) {
	cfg := NewDefault()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg.validate()
	return cfg, nil
}

// mergeFile overlays settings from a TOML file onto cfg.
func mergeFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // No config file is not an error
	} else if err != nil {
		return fmt.Errorf("error checking config file %q: %w", path, err)
	}

	fileCfg := &Config{}
	metadata, err := toml.DecodeFile(path, fileCfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("config file %q: unrecognized keys: %v", path, undecoded)
	}

	if fileCfg.Logger.LogLevel != "" {
		cfg.Logger.LogLevel = fileCfg.Logger.LogLevel
	}
	if fileCfg.Logger.LogFilePath != "" {
		cfg.Logger.LogFilePath = fileCfg.Logger.LogFilePath
	}
	if fileCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = fileCfg.Editor.TabWidth
	}
	if metadata.IsDefined("editor", "scroll_off") && fileCfg.Editor.ScrollOff >= 0 {
		cfg.Editor.ScrollOff = fileCfg.Editor.ScrollOff
	}
	if fileCfg.Editor.StatusBarHeight > 0 {
		cfg.Editor.StatusBarHeight = fileCfg.Editor.StatusBarHeight
	}
	if fileCfg.Editor.DefaultFile != "" {
		cfg.Editor.DefaultFile = fileCfg.Editor.DefaultFile
	}
	if fileCfg.Editor.ThemeFile != "" {
		cfg.Editor.ThemeFile = fileCfg.Editor.ThemeFile
	}
	// Booleans can't use a zero-value guard; only copy keys the file
	// actually sets.
	if metadata.IsDefined("editor", "system_clipboard") {
		cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefault()
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}
