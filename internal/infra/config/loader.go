// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/tasker-dev/tasker/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Directory containing config.toml
}

// fileConfig mirrors the TOML file structure. Pointer fields distinguish
// "not set" from zero values so defaults only fill the gaps.
type fileConfig struct {
	Store struct {
		Path *string `toml:"path"`
	} `toml:"store"`
	Log struct {
		Level   *string `toml:"level"`
		Enabled *bool   `toml:"enabled"`
	} `toml:"log"`
}

// NewLoader creates a Loader using the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns $XDG_CONFIG_HOME/tasker, falling back to
// ~/.config/tasker.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the configuration with defaults applied for anything the
// config file does not set. A missing file is not an error; the
// TASKER_STORE_PATH environment variable wins over both file and default.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.confDir != "" {
		path := filepath.Join(l.confDir, domain.ConfigFileName)
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			var fc fileConfig
			if err := toml.Unmarshal(content, &fc); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
			applyFile(cfg, &fc)
		}
	}

	// Environment override takes precedence over the config file.
	if p := os.Getenv(domain.EnvStorePath); p != "" {
		cfg.Store.Path = p
	}

	return cfg, nil
}

// applyFile overlays the file values onto the defaults.
func applyFile(cfg *domain.Config, fc *fileConfig) {
	if fc.Store.Path != nil && *fc.Store.Path != "" {
		cfg.Store.Path = expandHome(*fc.Store.Path)
	}
	if fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
	if fc.Log.Enabled != nil {
		cfg.Log.Enabled = *fc.Log.Enabled
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[0] != '~' || path[1] != '/' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
