// Package kvfile provides a file-backed key-value slot store.
// The file is a single JSON object mapping keys to JSON values.
package kvfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/tasks/internal/domain"
)

// entries is the decoded file content.
type entries = map[string]json.RawMessage

// Store is a key-value store persisted in one JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored at key.
// ok is false if the file or the key does not exist.
// Returns domain.ErrStorageCorrupted if the file is not a JSON object.
func (s *Store) Get(key string) (value json.RawMessage, ok bool, err error) {
	err = s.withLock(syscall.LOCK_SH, func() error {
		data, readErr := s.read()
		if readErr != nil {
			return readErr
		}
		value, ok = data[key]
		return nil
	})
	return value, ok, err
}

// Set replaces the value stored at key.
// A corrupted file is replaced rather than reported.
func (s *Store) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("set %q: value is not valid JSON", key)
	}
	return s.withLock(syscall.LOCK_EX, func() error {
		data, err := s.read()
		if err != nil {
			if !errors.Is(err, domain.ErrStorageCorrupted) {
				return err
			}
			data = entries{}
		}
		data[key] = value
		return s.write(data)
	})
}

// withLock executes fn while holding a lock of the given type on the lock file.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (entries, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries{}, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	var data entries
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageCorrupted, s.path, err)
	}
	if data == nil {
		data = entries{}
	}
	return data, nil
}

func (s *Store) write(data entries) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
