package report

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"taskflow/internal/sched"
)

// CSV appends one row per drain event to a file, for offline inspection of
// a run.
type CSV struct {
	f *os.File
	w *csv.Writer
}

// NewCSV opens path for writing and emits the header row.
func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	w.Write([]string{"timestamp", "event", "priority", "task", "pending", "error"})
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSV{f: f, w: w}, nil
}

func (r *CSV) HandleEvent(ev sched.Event) {
	priority, task := "", ""
	if ev.Kind == sched.EventTaskStart || ev.Kind == sched.EventTaskDone || ev.Kind == sched.EventTaskFail {
		priority = ev.Priority.String()
		task = ev.Task
	}

	r.w.Write([]string{
		ev.Time.Format(time.RFC3339Nano),
		ev.Kind.String(),
		priority,
		task,
		strconv.Itoa(ev.Pending),
		sched.Describe(ev.Err),
	})
	r.w.Flush()
}

// Close flushes and closes the underlying file. Call after RunAll returns.
func (r *CSV) Close() error {
	r.w.Flush()
	return r.f.Close()
}

var _ sched.Reporter = (*CSV)(nil)
