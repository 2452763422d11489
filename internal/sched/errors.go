package sched

import "errors"

var (
	// ErrTimeout is reserved for time-budget enforcement. Nothing in the
	// current execution path produces it.
	ErrTimeout = errors.New("task timed out")
	// ErrNotFound is reserved for task lookup by identifier. Nothing in the
	// current execution path produces it.
	ErrNotFound = errors.New("task not found")

	// ErrSchedulerClosed is returned when a scheduler is used after RunAll
	// has consumed it.
	ErrSchedulerClosed = errors.New("scheduler already consumed")
)

// ExecutionError reports a task whose execution logic rejected or failed
// the unit of work.
type ExecutionError struct {
	Reason string
}

func (e *ExecutionError) Error() string {
	return "execution failed: " + e.Reason
}

// Describe renders a task failure for humans. It exists so every consumer
// (console, CSV, logs) formats the closed set of failure kinds the same way.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var execErr *ExecutionError
	switch {
	case errors.As(err, &execErr):
		return execErr.Error()
	case errors.Is(err, ErrTimeout):
		return ErrTimeout.Error()
	case errors.Is(err, ErrNotFound):
		return ErrNotFound.Error()
	default:
		return err.Error()
	}
}
