package usecase

import (
	"context"
	"time"

	"github.com/runoshun/tasks/internal/domain"
)

// ScheduleRemovalInput contains the parameters for scheduling a removal.
type ScheduleRemovalInput struct {
	TaskID int64
}

// ScheduleRemovalOutput contains the result of scheduling a removal.
type ScheduleRemovalOutput struct {
	Delay     time.Duration // How long the caller waits before running DeleteTask
	Scheduled bool          // False if the task is unknown or already pending
}

// ScheduleRemoval moves a task into the pending-removal phase.
// The caller runs DeleteTask once Delay has elapsed; there is no cancellation.
type ScheduleRemoval struct {
	tasks domain.TaskStore
	delay time.Duration
}

// NewScheduleRemoval creates a new ScheduleRemoval use case.
func NewScheduleRemoval(tasks domain.TaskStore, delay time.Duration) *ScheduleRemoval {
	return &ScheduleRemoval{tasks: tasks, delay: delay}
}

// Execute marks the task as pending removal.
func (uc *ScheduleRemoval) Execute(_ context.Context, in ScheduleRemovalInput) (*ScheduleRemovalOutput, error) {
	if !uc.tasks.MarkPendingRemoval(in.TaskID) {
		return &ScheduleRemovalOutput{Delay: uc.delay}, nil
	}
	return &ScheduleRemovalOutput{Delay: uc.delay, Scheduled: true}, nil
}
