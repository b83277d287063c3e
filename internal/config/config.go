// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/dlxed/dlxed/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabSize          int    `toml:"tab_size"`
	ShowWhitespaces  bool   `toml:"show_whitespaces"`
	SystemClipboard  bool   `toml:"system_clipboard"`
	ColorizerEnabled bool   `toml:"colorizer"`
	Palette          string `toml:"palette"` // "dark", "light", "retro-blue" or a TOML file path
	ReadOnly         bool   `toml:"read_only"`
	MaxUndoSize      int    `toml:"max_undo_size"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabSize:          DefaultTabSize,
			ShowWhitespaces:  false,
			SystemClipboard:  DefaultSystemClipboard,
			ColorizerEnabled: true,
			Palette:          "dark",
			MaxUndoSize:      DefaultMaxUndoSize,
		},
	}
}

// loadFromFile decodes a TOML config file. A missing file is not an error.
func loadFromFile(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("checking config file %q: %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("config %q: unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate clamps or resets invalid values.
func (c *Config) validate() {
	if c.Editor.TabSize < MinTabSize {
		c.Editor.TabSize = MinTabSize
	}
	if c.Editor.TabSize > MaxTabSize {
		c.Editor.TabSize = MaxTabSize
	}
	if c.Editor.MaxUndoSize <= 0 {
		c.Editor.MaxUndoSize = DefaultMaxUndoSize
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = "info"
	}
	if c.Editor.Palette == "" {
		c.Editor.Palette = "dark"
	}
}

// Load merges defaults with an optional config file. It runs once; later
// calls return the cached result.
func Load(configFilePath string) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.TabSize > 0 {
					cfg.Editor.TabSize = fileCfg.Editor.TabSize
				}
				if fileCfg.Editor.Palette != "" {
					cfg.Editor.Palette = fileCfg.Editor.Palette
				}
				if fileCfg.Editor.MaxUndoSize > 0 {
					cfg.Editor.MaxUndoSize = fileCfg.Editor.MaxUndoSize
				}
				cfg.Editor.ShowWhitespaces = fileCfg.Editor.ShowWhitespaces
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
				cfg.Editor.ColorizerEnabled = fileCfg.Editor.ColorizerEnabled
				cfg.Editor.ReadOnly = fileCfg.Editor.ReadOnly
			}
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded configuration. Panics if Load was never called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.Load()")
	}
	return loadedConfig
}
