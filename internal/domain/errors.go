package domain

import (
	"errors"
	"fmt"
)

// Precondition failures. They are returned before any subprocess starts and
// are never retried.
var (
	ErrNoFile         = errors.New("buffer is not visiting a file")
	ErrUnsavedChanges = errors.New("buffer has unsaved changes; save it first")
	ErrEmptyScope     = errors.New("analysis scope is empty")
	ErrNoScope        = errors.New("no analysis scope set")
	ErrBusy           = errors.New("a query is already running")
	ErrUnknownMode    = errors.New("unknown mode")
)

// LaunchError reports that the analysis tool could not be started at all.
type LaunchError struct {
	Tool string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
