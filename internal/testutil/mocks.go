// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"sync"
	"time"

	"github.com/runoshun/tasks/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockStorage is an in-memory domain.TaskStorage.
// Fields are ordered to minimize memory padding.
type MockStorage struct {
	SaveErr   error
	Saved     []domain.Task
	SaveCalls int
	LoadCalls int
}

// Ensure MockStorage implements domain.TaskStorage.
var _ domain.TaskStorage = (*MockStorage)(nil)

// NewMockStorage returns a MockStorage pre-populated with tasks.
func NewMockStorage(tasks ...domain.Task) *MockStorage {
	return &MockStorage{Saved: slices.Clone(tasks)}
}

// Load returns a copy of the last saved list.
func (m *MockStorage) Load() []domain.Task {
	m.LoadCalls++
	out := slices.Clone(m.Saved)
	if out == nil {
		out = []domain.Task{}
	}
	return out
}

// Save records a copy of tasks, or returns SaveErr.
func (m *MockStorage) Save(tasks []domain.Task) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = slices.Clone(tasks)
	return nil
}

// LogEntry is a single captured log line.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int64
}

// MockLogger captures log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level string, taskID int64, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int64, category, msg string) { m.add("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int64, category, msg string) { m.add("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID int64, category, msg string) { m.add("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID int64, category, msg string) { m.add("ERROR", taskID, category, msg) }

// Levels returns the level of every captured entry in order.
func (m *MockLogger) Levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	levels := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		levels = append(levels, e.Level)
	}
	return levels
}
