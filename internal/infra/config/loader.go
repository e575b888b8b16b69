// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasks/internal/domain"
)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Path to <repo>/.git/tasks (empty outside a repository)
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasks)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
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

// DefaultGlobalDataDir returns the default global data directory.
func DefaultGlobalDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.GlobalDataDir(dataHome)
}

// Load returns the merged configuration.
// Merge order: defaults <- global <- project (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		raw, err := readRaw(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, w := range applyRaw(cfg, raw) {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: %s", path, w))
		}
	}

	return cfg, nil
}

// paths returns config file paths in merge order.
func (l *Loader) paths() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, domain.ConfigPath(l.globalConfDir))
	}
	if l.projectDir != "" {
		paths = append(paths, domain.ConfigPath(l.projectDir))
	}
	return paths
}

// readRaw reads a TOML file into a generic map.
func readRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// applyRaw overlays the keys present in raw onto cfg and returns warnings
// for unknown keys and values of the wrong type.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "storage":
			for k, v := range m {
				switch k {
				case "path":
					warnings = appendIfErr(warnings, section, k, setString(&cfg.Storage.Path, v))
				case "key":
					warnings = appendIfErr(warnings, section, k, setString(&cfg.Storage.Key, v))
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					warnings = appendIfErr(warnings, section, k, setLogLevel(&cfg.Log.Level, v))
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "delete_delay":
					warnings = appendIfErr(warnings, section, k, setDuration(&cfg.TUI.DeleteDelay, v))
				case "show_help":
					warnings = appendIfErr(warnings, section, k, setBool(&cfg.TUI.ShowHelp, v))
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func appendIfErr(warnings []string, section, key string, err error) []string {
	if err == nil {
		return warnings
	}
	return append(warnings, fmt.Sprintf("invalid value for [%s] %s: %v", section, key, err))
}

func setString(dst *string, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", v)
	}
	*dst = s
	return nil
}

func setBool(dst *bool, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected boolean, got %T", v)
	}
	*dst = b
	return nil
}

func setDuration(dst *domain.Duration, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected duration string, got %T", v)
	}
	return dst.UnmarshalText([]byte(s))
}

func setLogLevel(dst *string, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", v)
	}
	switch s {
	case "debug", "info", "warn", "error":
		*dst = s
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidLogLevel, s)
}
