package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasks/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int64 // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Found bool // False if no task had the ID; nothing changed
}

// DeleteTask is the use case for removing a task immediately.
type DeleteTask struct {
	tasks domain.TaskStore
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskStore) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute deletes the task. An unknown ID is a no-op, not an error.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	found, err := uc.tasks.Delete(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return &DeleteTaskOutput{Found: found}, nil
}
