// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/tasks/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text (trimmed; blank is rejected)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task to the top of the list.
type AddTask struct {
	tasks domain.TaskStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskStore) *AddTask {
	return &AddTask{tasks: tasks}
}

// Execute adds a task. Returns domain.ErrEmptyText for blank text.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := uc.tasks.Add(in.Text)
	if err != nil {
		return nil, err
	}
	return &AddTaskOutput{Task: task}, nil
}
