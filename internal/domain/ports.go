package domain

import "time"

// TaskStorage persists the whole task list under a single key.
type TaskStorage interface {
	// Load returns the persisted list. Missing or unparseable data yields an empty list.
	Load() []Task

	// Save replaces the persisted list with tasks.
	Save(tasks []Task) error
}

// IDGenerator issues task IDs.
type IDGenerator interface {
	// NextID returns an ID strictly greater than any previously issued or observed.
	NextID() int64

	// Observe records an existing ID so it is never issued again.
	Observe(id int64)
}

// Logger provides structured logging with task context.
type Logger interface {
	// Info logs an info message.
	Info(taskID int64, category, msg string)
	// Debug logs a debug message.
	Debug(taskID int64, category, msg string)
	// Warn logs a warning message.
	Warn(taskID int64, category, msg string)
	// Error logs an error message.
	Error(taskID int64, category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(int64, string, string)  {}
func (NopLogger) Debug(int64, string, string) {}
func (NopLogger) Warn(int64, string, string)  {}
func (NopLogger) Error(int64, string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// TaskStore is the in-memory task list that persists every mutation.
type TaskStore interface {
	// Tasks returns a copy of the list, newest first.
	Tasks() []Task

	// Get returns the task with the given ID.
	Get(id int64) (Task, bool)

	// Phase returns the removal phase of a task.
	Phase(id int64) Phase

	// Add prepends a new task. Returns ErrEmptyText for blank text.
	Add(text string) (Task, error)

	// Toggle inverts Completed. Returns false if the ID is unknown.
	Toggle(id int64) (bool, error)

	// Delete removes a task. Returns false if the ID is unknown.
	Delete(id int64) (bool, error)

	// MarkPendingRemoval moves a task into PhasePendingRemoval.
	MarkPendingRemoval(id int64) bool
}
