package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/tasks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_ProjectConfigOnly(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
[storage]
path = "/tmp/todo.json"
key = "work"

[log]
level = "debug"

[tui]
delete_delay = "1s"
show_help = false
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/todo.json", cfg.Storage.Path)
	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.TUI.DeleteDelay.Std())
	assert.False(t, cfg.TUI.ShowHelp)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
[storage]
key = "global"

[log]
level = "warn"
`)
	writeConfig(t, projectDir, `
[storage]
key = "project"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "project", cfg.Storage.Key)
	assert.Equal(t, "warn", cfg.Log.Level, "global value kept when project does not set it")
	assert.Equal(t, domain.DefaultDeleteDelay, cfg.TUI.DeleteDelay.Std())
}

func TestLoader_Load_NoProjectDir(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[storage]\nkey = \"g\"\n")

	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "g", cfg.Storage.Key)
}

func TestLoader_Load_Warnings(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
top = 1

[storage]
color = "blue"

[log]
level = "loud"

[tui]
delete_delay = "eventually"
show_help = "yes"

[sync]
remote = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).Load()
	require.NoError(t, err)

	joined := ""
	for _, w := range cfg.Warnings {
		joined += w + "\n"
	}
	assert.Len(t, cfg.Warnings, 6)
	assert.Contains(t, joined, "unknown key: top")
	assert.Contains(t, joined, "unknown key in [storage]: color")
	assert.Contains(t, joined, "invalid value for [log] level")
	assert.Contains(t, joined, "invalid value for [tui] delete_delay")
	assert.Contains(t, joined, "invalid value for [tui] show_help")
	assert.Contains(t, joined, "unknown section: sync")

	// Invalid values leave defaults in place
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.DefaultDeleteDelay, cfg.TUI.DeleteDelay.Std())
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, "[storage\nkey = ")

	_, err := NewLoaderWithGlobalDir(projectDir, t.TempDir()).Load()
	assert.Error(t, err)
}
