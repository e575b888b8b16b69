// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/tasks/internal/domain"
	"github.com/runoshun/tasks/internal/infra/config"
	"github.com/runoshun/tasks/internal/infra/git"
	"github.com/runoshun/tasks/internal/infra/jsonstore"
	"github.com/runoshun/tasks/internal/infra/kvfile"
	"github.com/runoshun/tasks/internal/infra/logging"
	"github.com/runoshun/tasks/internal/store"
	"github.com/runoshun/tasks/internal/usecase"
)

// StorageEnv overrides the storage file path.
const StorageEnv = "TASKS_STORAGE"

// Config holds the resolved application paths.
type Config struct {
	RepoRoot    string // Root directory of the git repository (empty outside a repository)
	GitDir      string // Common .git directory (empty outside a repository)
	ProjectDir  string // Path to .git/tasks (empty outside a repository)
	DataDir     string // Directory holding logs; the project dir or the global data dir
	StoragePath string // Path to the key-value storage file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks  domain.TaskStore
	Clock  domain.Clock
	Logger domain.Logger

	// Pointer fields
	Settings      *domain.Config
	ConfigLoader  *config.Loader
	ConfigManager *config.Manager
	closeLog      func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Inside a git repository, tasks and config are scoped to that repository.
func New(dir string) (*Container, error) {
	var cfg Config

	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		cfg.RepoRoot = gitClient.RepoRoot()
		cfg.GitDir = gitClient.GitDir()
		cfg.ProjectDir = domain.ProjectDir(cfg.GitDir)
		cfg.DataDir = cfg.ProjectDir
	case errors.Is(err, domain.ErrNotGitRepository):
		cfg.DataDir = config.DefaultGlobalDataDir()
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.ProjectDir)
	settings, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg.StoragePath = resolveStoragePath(settings, cfg.DataDir)

	logger := logging.New(cfg.DataDir, logging.ParseLevel(settings.Log.Level))

	c := NewWithDeps(cfg, settings, kvfile.New(cfg.StoragePath), logger, domain.RealClock{})
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManager(cfg.ProjectDir)
	c.closeLog = logger.Close
	return c, nil
}

// NewWithDeps builds a Container from explicit dependencies.
// This is useful for testing.
func NewWithDeps(cfg Config, settings *domain.Config, slot jsonstore.Slot, logger domain.Logger, clock domain.Clock) *Container {
	if settings == nil {
		settings = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if clock == nil {
		clock = domain.RealClock{}
	}

	storage := jsonstore.New(slot, settings.Storage.Key, logger)
	tasks := store.New(storage,
		store.WithClock(clock),
		store.WithLogger(logger),
	)

	return &Container{
		Tasks:    tasks,
		Clock:    clock,
		Logger:   logger,
		Settings: settings,
		Config:   cfg,
	}
}

// resolveStoragePath picks the storage file.
// Order: TASKS_STORAGE, [storage] path, <dataDir>/storage.json.
func resolveStoragePath(settings *domain.Config, dataDir string) string {
	if p := os.Getenv(StorageEnv); p != "" {
		return expandHome(p)
	}
	if settings.Storage.Path != "" {
		return expandHome(settings.Storage.Path)
	}
	return domain.StoragePath(dataDir)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ScheduleRemovalUseCase returns a new ScheduleRemoval use case using the configured delay.
func (c *Container) ScheduleRemovalUseCase() *usecase.ScheduleRemoval {
	return usecase.NewScheduleRemoval(c.Tasks, c.Settings.TUI.DeleteDelay.Std())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}
