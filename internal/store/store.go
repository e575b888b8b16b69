// Package store holds the in-memory task list and applies mutations to it.
// Every mutation is written back through domain.TaskStorage before it returns.
package store

import (
	"fmt"
	"slices"

	"github.com/runoshun/tasks/internal/domain"
)

// Store is the in-memory, newest-first task list.
// It is not safe for concurrent use; callers run it on a single event loop.
type Store struct {
	storage domain.TaskStorage
	clock   domain.Clock
	ids     domain.IDGenerator
	logger  domain.Logger
	pending map[int64]struct{}
	tasks   []domain.Task
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for CreatedAt and default IDs.
func WithClock(clock domain.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides the ID generator.
func WithIDGenerator(ids domain.IDGenerator) Option {
	return func(s *Store) { s.ids = ids }
}

// WithLogger sets the logger.
func WithLogger(logger domain.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New loads the persisted list from storage and returns a Store holding it.
// Loaded tasks whose ID is out of range or repeats an earlier row get a
// fresh ID, and the repaired list is saved once.
func New(storage domain.TaskStorage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		clock:   domain.RealClock{},
		logger:  domain.NopLogger{},
		pending: make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewMonotonicIDs(s.clock)
	}

	s.tasks = storage.Load()
	if s.tasks == nil {
		s.tasks = []domain.Task{}
	}
	s.ids.Observe(domain.MaxID(s.tasks))
	s.logger.Debug(0, "store", fmt.Sprintf("loaded %d tasks", len(s.tasks)))
	if n := s.rekey(); n > 0 {
		s.logger.Warn(0, "store", fmt.Sprintf("reassigned %d duplicate or invalid task IDs", n))
		_ = s.save()
	}
	return s
}

// rekey assigns a new ID to every task whose ID is invalid or already used
// by an earlier row, so that each ID addresses exactly one task.
func (s *Store) rekey() int {
	seen := make(map[int64]struct{}, len(s.tasks))
	n := 0
	for i := range s.tasks {
		id := s.tasks[i].ID
		if _, dup := seen[id]; dup || !domain.ValidID(id) {
			id = s.ids.NextID()
			s.tasks[i].ID = id
			n++
		}
		seen[id] = struct{}{}
	}
	return n
}

// Tasks returns a copy of the list, newest first.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id int64) (domain.Task, bool) {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Phase returns the removal phase of the task with the given ID.
// Unknown IDs report PhaseActive.
func (s *Store) Phase(id int64) domain.Phase {
	if _, ok := s.pending[id]; ok {
		return domain.PhasePendingRemoval
	}
	return domain.PhaseActive
}

// Add prepends a new task built from text and persists the list.
// Returns domain.ErrEmptyText, leaving the list unchanged, if text is blank.
// If saving fails the task is dropped again and the list is unchanged.
func (s *Store) Add(text string) (domain.Task, error) {
	if domain.NormalizeText(text) == "" {
		return domain.Task{}, domain.ErrEmptyText
	}

	task, err := domain.NewTask(s.ids.NextID(), text, s.clock.Now())
	if err != nil {
		return domain.Task{}, err
	}

	s.tasks = slices.Insert(s.tasks, 0, task)
	if err := s.save(); err != nil {
		s.tasks = slices.Delete(s.tasks, 0, 1)
		return domain.Task{}, err
	}
	s.logger.Info(task.ID, "task", fmt.Sprintf("added: %q", task.Text))
	return task, nil
}

// Toggle inverts Completed on the task with the given ID and persists the list.
// Returns false without saving if the ID is unknown. The change is reverted
// if saving fails.
func (s *Store) Toggle(id int64) (bool, error) {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return false, nil
	}

	prev := s.tasks[i]
	s.tasks[i] = prev.Toggled()
	if err := s.save(); err != nil {
		s.tasks[i] = prev
		return true, err
	}
	s.logger.Info(id, "task", fmt.Sprintf("completed=%t", s.tasks[i].Completed))
	return true, nil
}

// Delete removes the task with the given ID and persists the list.
// Returns false without saving if the ID is unknown. If saving fails the
// task stays listed as active so the removal can be retried.
func (s *Store) Delete(id int64) (bool, error) {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		delete(s.pending, id)
		return false, nil
	}

	prev := s.tasks
	s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	delete(s.pending, id)
	if err := s.save(); err != nil {
		s.tasks = prev
		return true, err
	}
	s.logger.Info(id, "task", "deleted")
	return true, nil
}

// MarkPendingRemoval moves an active task into the pending-removal phase.
// The task stays listed and persisted until Delete is called.
// Returns false if the ID is unknown or already pending.
func (s *Store) MarkPendingRemoval(id int64) bool {
	if domain.IndexOf(s.tasks, id) < 0 {
		return false
	}
	if _, ok := s.pending[id]; ok {
		return false
	}
	s.pending[id] = struct{}{}
	s.logger.Debug(id, "task", "pending removal")
	return true
}

func (s *Store) save() error {
	if err := s.storage.Save(s.tasks); err != nil {
		s.logger.Error(0, "store", err.Error())
		return err
	}
	return nil
}

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)
