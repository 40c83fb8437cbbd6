package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority (expected low, medium or high)")
	ErrInvalidStatus   = errors.New("invalid status (expected pending or done)")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskAlreadyDone = errors.New("task is already done")
	ErrCorruptStore    = errors.New("store file is corrupt")
	ErrStoreIO         = errors.New("store I/O failure")
	ErrEmptyImport     = errors.New("import file contains no tasks")
)
