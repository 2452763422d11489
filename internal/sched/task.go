package sched

import (
	"context"
	"fmt"
	"time"
)

// MaxTaskDuration is the ceiling SimpleTask enforces on its own workload.
const MaxTaskDuration = 5 * time.Second

// Executable is implemented by any schedulable unit of work. Implementations
// must be safe to hand off to the worker goroutine and to read from multiple
// goroutines before execution begins.
type Executable interface {
	// Execute performs the unit of work. It may block for the task's nominal
	// duration and returns an error when the task's own policy rejects or
	// fails the work.
	Execute(ctx context.Context) error

	// Name returns a stable identifier for logging and assertions.
	Name() string
}

// SimpleTask simulates a workload by sleeping for its nominal duration. It
// refuses to run workloads longer than MaxTaskDuration; that ceiling is a
// property of this task type, not of the scheduler.
type SimpleTask struct {
	name     string
	duration time.Duration
}

// NewSimpleTask creates a task that blocks for the given duration when run.
func NewSimpleTask(name string, duration time.Duration) *SimpleTask {
	return &SimpleTask{name: name, duration: duration}
}

func (t *SimpleTask) Execute(ctx context.Context) error {
	if t.duration > MaxTaskDuration {
		return &ExecutionError{
			Reason: fmt.Sprintf("task duration %s exceeds the %s limit", t.duration, MaxTaskDuration),
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(t.duration):
		return nil
	}
}

func (t *SimpleTask) Name() string {
	return t.name
}

var _ Executable = (*SimpleTask)(nil)
