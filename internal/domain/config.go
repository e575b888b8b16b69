package domain

import (
	"fmt"
	"time"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	TUI      TUIConfig     `toml:"tui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Path string `toml:"path,omitempty"` // Storage file (empty = project or data dir default)
	Key  string `toml:"key"`            // Key holding the task list inside the storage file
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// TUIConfig holds TUI settings from the [tui] section.
type TUIConfig struct {
	DeleteDelay Duration `toml:"delete_delay"` // Time a task stays pending removal before it is deleted
	ShowHelp    bool     `toml:"show_help"`    // Show the key help footer
}

// Duration is a time.Duration encoded as a string ("500ms") in config files.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(text), err)
	}
	if v < 0 {
		return fmt.Errorf("duration %q must not be negative", string(text))
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default configuration values.
const (
	DefaultStorageKey  = "tasks"
	DefaultLogLevel    = "info"
	DefaultDeleteDelay = 500 * time.Millisecond
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Key: DefaultStorageKey,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		TUI: TUIConfig{
			DeleteDelay: Duration(DefaultDeleteDelay),
			ShowHelp:    true,
		},
	}
}
