// internal/sched/event.go

package sched

import (
	"time"
)

// EventKind represents the type of drain event
type EventKind int

const (
	EventDrainStart EventKind = iota
	EventTaskStart
	EventTaskDone
	EventTaskFail
	EventDrainEnd
)

// Event is emitted by the worker for every step of a drain
type Event struct {
	Time     time.Time
	Kind     EventKind
	Priority Priority
	Task     string
	Pending  int   // queue length, set on EventDrainStart
	Err      error // set on EventTaskFail
}

func (k EventKind) String() string {
	switch k {
	case EventDrainStart:
		return "DrainStart"
	case EventTaskStart:
		return "TaskStart"
	case EventTaskDone:
		return "TaskDone"
	case EventTaskFail:
		return "TaskFail"
	case EventDrainEnd:
		return "DrainEnd"
	default:
		return "Unknown"
	}
}
