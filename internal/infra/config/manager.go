package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasks/internal/domain"
)

// ErrConfigExists is returned when initializing over an existing config file.
var ErrConfigExists = errors.New("config file already exists")

// Info describes a config file on disk.
type Info struct {
	Path    string
	Content string
	Exists  bool
}

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Path to <repo>/.git/tasks
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasks)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// ProjectConfigInfo returns information about the project config file.
func (m *Manager) ProjectConfigInfo() Info {
	if m.projectDir == "" {
		return Info{}
	}
	return readInfo(domain.ConfigPath(m.projectDir))
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() Info {
	if m.globalConfDir == "" {
		return Info{}
	}
	return readInfo(domain.ConfigPath(m.globalConfDir))
}

func readInfo(path string) Info {
	content, err := os.ReadFile(path)
	if err != nil {
		return Info{Path: path}
	}
	return Info{Path: path, Content: string(content), Exists: true}
}

// InitProjectConfig writes a default config file for the current repository.
func (m *Manager) InitProjectConfig() (string, error) {
	if m.projectDir == "" {
		return "", errors.New("not inside a git repository")
	}
	return m.initConfig(m.projectDir)
}

// InitGlobalConfig writes a default global config file.
func (m *Manager) InitGlobalConfig() (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	return m.initConfig(m.globalConfDir)
}

func (m *Manager) initConfig(dir string) (string, error) {
	path := domain.ConfigPath(dir)
	if _, err := os.Stat(path); err == nil {
		return path, ErrConfigExists
	}

	content, err := Render(domain.NewDefaultConfig())
	if err != nil {
		return path, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return path, fmt.Errorf("create config directory: %w", err)
	}
	return path, os.WriteFile(path, []byte(content), 0o600)
}

// Render encodes cfg as TOML.
func Render(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}
