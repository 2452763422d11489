// internal/sched/scheduler.go

package sched

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Scheduler owns a shared priority queue of tasks and drains it with a
// single worker. Producers submit through AddTask from any goroutine; RunAll
// consumes the scheduler and executes everything queued so far in strict
// priority order.
type Scheduler struct {
	mu      sync.Mutex       // protects queue, nextSeq and closed
	queue   *binaryheap.Heap // entries ordered by (priority rank, sequence)
	nextSeq uint64           // submission counter, breaks ties within a priority
	closed  bool             // set once RunAll has consumed the scheduler

	events   chan Event // drain events, worker -> RunAll caller
	reporter Reporter
	logger   *slog.Logger

	drainErr error // captured worker panic, read after events closes
}

// New creates a Scheduler with an empty queue. Events are rendered through
// the given logger unless SetReporter installs something else.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		queue:    binaryheap.NewWith(byPriority),
		events:   make(chan Event, 64), // buffered so the worker rarely stalls on narration
		reporter: &logReporter{logger: logger},
		logger:   logger,
	}
}

// SetReporter replaces the default slog rendering of drain events.
// Must be called before RunAll().
func (s *Scheduler) SetReporter(r Reporter) {
	if r != nil {
		s.reporter = r
	}
}

// AddTask enqueues a task at the given priority. Concurrent calls serialize
// through the queue lock; every call either lands its entry or returns an
// error. After RunAll has consumed the scheduler it returns ErrSchedulerClosed.
func (s *Scheduler) AddTask(priority Priority, task Executable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSchedulerClosed
	}

	s.queue.Push(entry{priority: priority, task: task, seq: s.nextSeq})
	s.nextSeq++

	s.logger.Debug("task enqueued",
		"task", task.Name(),
		"priority", priority.String(),
		"pending", s.queue.Size(),
	)
	return nil
}

// Len reports how many entries are waiting in the queue.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Size()
}

// RunAll consumes the scheduler: it hands the queue to a single worker
// goroutine, renders the worker's events on the calling goroutine, and
// blocks until the drain finishes. The worker holds the queue lock for the
// entire drain, so the run is atomic with respect to producers; submissions
// arriving after RunAll fail with ErrSchedulerClosed.
//
// A task error is reported through the events and the drain continues. A
// task panic aborts the drain and is returned as an error here, never
// swallowed.
func (s *Scheduler) RunAll(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSchedulerClosed
	}
	s.closed = true
	s.mu.Unlock()

	go s.drain(ctx)

	for ev := range s.events {
		s.reporter.HandleEvent(ev)
	}

	return s.drainErr
}

// drain is the worker. It acquires the queue lock once and pops entries from
// the ready end until the queue is empty, executing each and emitting events.
// The lock and the event channel are released on every exit path, including
// a panicking task.
func (s *Scheduler) drain(ctx context.Context) {
	defer close(s.events)
	defer func() {
		if r := recover(); r != nil {
			s.drainErr = fmt.Errorf("worker aborted: task panicked: %v", r)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events <- Event{Time: time.Now(), Kind: EventDrainStart, Pending: s.queue.Size()}

	for {
		v, ok := s.queue.Pop()
		if !ok {
			break
		}
		e := v.(entry)

		s.events <- Event{Time: time.Now(), Kind: EventTaskStart, Priority: e.priority, Task: e.task.Name()}

		if err := e.task.Execute(ctx); err != nil {
			s.events <- Event{Time: time.Now(), Kind: EventTaskFail, Priority: e.priority, Task: e.task.Name(), Err: err}
		} else {
			s.events <- Event{Time: time.Now(), Kind: EventTaskDone, Priority: e.priority, Task: e.task.Name()}
		}
	}

	s.events <- Event{Time: time.Now(), Kind: EventDrainEnd}
}

// entry is one queued (priority, task) pair. seq records submission order.
type entry struct {
	priority Priority
	task     Executable
	seq      uint64
}

// byPriority orders entries for the binary heap: lower rank first, and
// within a rank, earlier submission first. The sequence component keeps the
// heap order stable.
func byPriority(a, b any) int {
	ea, eb := a.(entry), b.(entry)
	if ea.priority != eb.priority {
		return ea.priority.rank() - eb.priority.rank()
	}
	switch {
	case ea.seq < eb.seq:
		return -1
	case ea.seq > eb.seq:
		return 1
	default:
		return 0
	}
}
