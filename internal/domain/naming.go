package domain

import "path/filepath"

// Directory and file names.
const (
	AppDirName      = "tasks"        // Directory name under config/data homes and .git
	ConfigFileName  = "config.toml"  // Config file name
	StorageFileName = "storage.json" // Key-value storage file name
	LogFileName     = "tasks.log"    // Log file name
)

// ProjectDir returns the per-repository data directory inside gitDir,
// the common .git directory shared by every worktree.
func ProjectDir(gitDir string) string {
	return filepath.Join(gitDir, AppDirName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalDataDir returns the global data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func GlobalDataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// StoragePath returns the storage file path inside dir.
func StoragePath(dir string) string {
	return filepath.Join(dir, StorageFileName)
}

// LogPath returns the log file path inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, "logs", LogFileName)
}
