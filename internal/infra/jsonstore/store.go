// Package jsonstore provides the JSON implementation of domain.TaskStorage.
// The task list is stored as a JSON array under a single key of a kvfile store.
package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/tasks/internal/domain"
)

// Slot is the key-value store the task list is written to.
type Slot interface {
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, value json.RawMessage) error
}

// Store implements domain.TaskStorage on top of a Slot.
type Store struct {
	slot   Slot
	logger domain.Logger
	key    string
}

// Ensure Store implements domain.TaskStorage.
var _ domain.TaskStorage = (*Store)(nil)

// New creates a Store that keeps the task list at key.
// An empty key falls back to domain.DefaultStorageKey.
func New(slot Slot, key string, logger domain.Logger) *Store {
	if key == "" {
		key = domain.DefaultStorageKey
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		slot:   slot,
		key:    key,
		logger: logger,
	}
}

// Load returns the persisted task list.
// Missing, unreadable or malformed data is treated as an empty list.
func (s *Store) Load() []domain.Task {
	raw, ok, err := s.slot.Get(s.key)
	if err != nil {
		s.logger.Warn(0, "storage", fmt.Sprintf("read %q: %v (starting empty)", s.key, err))
		return []domain.Task{}
	}
	if !ok {
		return []domain.Task{}
	}

	tasks, err := Decode(raw)
	if err != nil {
		s.logger.Warn(0, "storage", fmt.Sprintf("parse %q: %v (starting empty)", s.key, err))
		return []domain.Task{}
	}
	return tasks
}

// Save replaces the persisted task list.
func (s *Store) Save(tasks []domain.Task) error {
	raw, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := s.slot.Set(s.key, raw); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Debug(0, "storage", fmt.Sprintf("saved %d tasks", len(tasks)))
	return nil
}

// Encode serializes a task list. A nil list encodes as an empty array.
func Encode(tasks []domain.Task) (json.RawMessage, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return raw, nil
}

// Decode parses a serialized task list. JSON null decodes as an empty list.
func Decode(raw json.RawMessage) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}
