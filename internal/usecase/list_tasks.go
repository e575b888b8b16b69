package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasks/internal/domain"
)

// ListFilter selects tasks by completion.
type ListFilter string

// Valid list filters.
const (
	ListAll  ListFilter = "all"
	ListOpen ListFilter = "open"
	ListDone ListFilter = "done"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter ListFilter // Empty means ListAll
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks   []domain.Task      // Matching tasks, newest first
	Summary domain.TaskSummary // Counts over the whole list, not just matches
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskStore) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the filter in insertion (newest-first) order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all := uc.tasks.Tasks()

	var keep func(domain.Task) bool
	switch in.Filter {
	case "", ListAll:
		keep = func(domain.Task) bool { return true }
	case ListOpen:
		keep = func(t domain.Task) bool { return !t.Completed }
	case ListDone:
		keep = func(t domain.Task) bool { return t.Completed }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilter, in.Filter)
	}

	matched := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if keep(t) {
			matched = append(matched, t)
		}
	}

	return &ListTasksOutput{
		Tasks:   matched,
		Summary: domain.NewTaskSummary(all),
	}, nil
}
