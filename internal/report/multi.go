package report

import "taskflow/internal/sched"

type multi []sched.Reporter

// Multi fans every event out to each of the given reporters in order.
func Multi(reporters ...sched.Reporter) sched.Reporter {
	return multi(reporters)
}

func (m multi) HandleEvent(ev sched.Event) {
	for _, r := range m {
		r.HandleEvent(ev)
	}
}
