package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasks/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int64
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task  domain.Task // Task after the toggle (zero if not found)
	Found bool        // False if no task had the ID; nothing changed
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks domain.TaskStore
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskStore) *ToggleTask {
	return &ToggleTask{tasks: tasks}
}

// Execute toggles the task. An unknown ID is a no-op, not an error.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	found, err := uc.tasks.Toggle(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	if !found {
		return &ToggleTaskOutput{}, nil
	}
	task, _ := uc.tasks.Get(in.TaskID)
	return &ToggleTaskOutput{Task: task, Found: true}, nil
}
