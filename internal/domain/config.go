package domain

import (
	"os"
	"path/filepath"
)

// Config file and store locations.
const (
	ConfigFileName = "config.toml"
	StoreFileName  = "tasks.json"
)

// EnvStorePath overrides the store file location when set.
const EnvStorePath = "TASKER_STORE_PATH"

// Config represents the application configuration.
type Config struct {
	Store StoreConfig // [store] settings
	Log   LogConfig   // [log] settings
}

// StoreConfig holds store settings from the [store] section.
type StoreConfig struct {
	Path string // Path to the snapshot file
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level   string // Log level: debug, info, warn, error
	Enabled bool   // Write a log file next to the store
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Path: DefaultStorePath()},
		Log:   LogConfig{Level: "info", Enabled: true},
	}
}

// DefaultStorePath returns the store location: the TASKER_STORE_PATH
// environment variable if set, otherwise a dotfile in the home directory.
func DefaultStorePath() string {
	if p := os.Getenv(EnvStorePath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return StoreFileName
	}
	return filepath.Join(home, ".tasker", StoreFileName)
}

// GlobalConfigDir returns the config directory under the given config home
// (typically $XDG_CONFIG_HOME or ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "tasker")
}
