package cli

import (
	"errors"

	"github.com/tasker-dev/tasker/internal/domain"
)

// Exit codes by error class, so scripts can branch on the failure kind.
const (
	ExitOK           = 0
	ExitError        = 1 // Anything not covered below
	ExitInvalidInput = 2
	ExitNotFound     = 3
	ExitAlreadyDone  = 4
	ExitCorruptStore = 5
	ExitIO           = 6
)

// ExitCode maps an error to the exit code for its class.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidTaskID),
		errors.Is(err, domain.ErrEmptyImport):
		return ExitInvalidInput
	case errors.Is(err, domain.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrTaskAlreadyDone):
		return ExitAlreadyDone
	case errors.Is(err, domain.ErrCorruptStore):
		return ExitCorruptStore
	case errors.Is(err, domain.ErrStoreIO):
		return ExitIO
	default:
		return ExitError
	}
}
