package errorvalues

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error kinds. Every sentinel below wraps exactly one of them.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrProvider      = errors.New("calendar provider error")
	ErrStore         = errors.New("store error")
)

var (
	ErrUnknownTimezone    = fmt.Errorf("%w: unknown time zone", ErrConfiguration)
	ErrMissingCredentials = fmt.Errorf("%w: calendar credentials are missing", ErrConfiguration)
	ErrInvalidWorkHours   = fmt.Errorf("%w: invalid work hours", ErrConfiguration)

	ErrUserNotFound      = fmt.Errorf("%w: user doesn't exist", ErrNotFound)
	ErrTaskNotFound      = fmt.Errorf("%w: task doesn't exist", ErrNotFound)
	ErrWrongOwner        = fmt.Errorf("%w: task belongs to another user", ErrNotFound)
	ErrNoRunningInterval = fmt.Errorf("%w: nothing is running", ErrNotFound)

	ErrIntervalAlreadyOpen = errors.New("another interval is already running")
	ErrValidation          = errors.New("validation error")
	ErrInvalidToken        = errors.New("invalid token")
)

// Store wraps an unexpected persistence failure of op as a StoreError.
func Store(op string, err error) error {
	return fmt.Errorf("%s error: %w: %v", op, ErrStore, err)
}

// TaskError ties a failure to the task it happened on.
type TaskError struct {
	TaskID uuid.UUID
	Err    error
}

func (e *TaskError) Error() string {
	return "task " + e.TaskID.String() + ": " + e.Err.Error()
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
