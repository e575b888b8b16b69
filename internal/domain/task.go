// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// CreatedAtLayout is the layout of Task.CreatedAt (ISO-8601, millisecond precision, UTC).
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Task represents a single to-do record.
// Fields are ordered to minimize memory padding.
type Task struct {
	Text      string `json:"text" yaml:"text"`           // Trimmed, never empty
	CreatedAt string `json:"createdAt" yaml:"createdAt"` // Informational, preserved verbatim
	ID        int64  `json:"id" yaml:"id"`               // Unique within a list
	Completed bool   `json:"completed" yaml:"completed"` // Completion flag
}

// NewTask builds an incomplete task from user input.
// Returns ErrEmptyText if text is empty after trimming.
func NewTask(id int64, text string, now time.Time) (Task, error) {
	trimmed := NormalizeText(text)
	if trimmed == "" {
		return Task{}, ErrEmptyText
	}
	return Task{
		ID:        id,
		Text:      trimmed,
		CreatedAt: FormatCreatedAt(now),
	}, nil
}

// NormalizeText trims leading and trailing whitespace.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// FormatCreatedAt formats t the way CreatedAt is stored.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// Toggled returns a copy of the task with Completed inverted.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// IndexOf returns the index of the task with the given ID, or -1.
func IndexOf(tasks []Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxTaskID is the largest ID a task may carry: the largest integer that a
// JSON number holds exactly in double-precision decoders.
const MaxTaskID int64 = 1<<53 - 1

// ValidID reports whether id is in the range 1..MaxTaskID.
func ValidID(id int64) bool {
	return id > 0 && id <= MaxTaskID
}

// MaxID returns the largest valid ID in tasks, or 0 if there is none.
func MaxID(tasks []Task) int64 {
	var highest int64
	for _, t := range tasks {
		if ValidID(t.ID) && t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}

// TaskSummary holds the count of tasks by completion.
type TaskSummary struct {
	Total     int
	Completed int
	Open      int
}

// NewTaskSummary creates a TaskSummary from a list of tasks.
func NewTaskSummary(tasks []Task) TaskSummary {
	s := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Open = s.Total - s.Completed
	return s
}
