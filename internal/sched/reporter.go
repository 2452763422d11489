package sched

import "log/slog"

// Reporter renders drain events. Implementations run on the RunAll caller's
// goroutine and must not call back into the scheduler.
type Reporter interface {
	HandleEvent(ev Event)
}

// logReporter is the default Reporter; it narrates the drain through slog.
type logReporter struct {
	logger *slog.Logger
}

func (r *logReporter) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventDrainStart:
		r.logger.Info("drain started", "pending", ev.Pending)
	case EventTaskStart:
		r.logger.Info("running task", "task", ev.Task, "priority", ev.Priority.String())
	case EventTaskDone:
		r.logger.Info("task finished", "task", ev.Task, "priority", ev.Priority.String())
	case EventTaskFail:
		r.logger.Error("task failed", "task", ev.Task, "priority", ev.Priority.String(), "error", Describe(ev.Err))
	case EventDrainEnd:
		r.logger.Info("drain finished")
	}
}
