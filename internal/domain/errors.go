package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText           = errors.New("task text cannot be empty")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskID       = errors.New("invalid task ID")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidFilter       = errors.New("invalid list filter")
	ErrStorageCorrupted    = errors.New("storage file is corrupted")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrNotGitRepository    = errors.New("not a git repository")
)
