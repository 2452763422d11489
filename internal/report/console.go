package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"taskflow/internal/sched"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
)

// Console narrates drain events as human-readable lines, optionally with
// ANSI colors.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a console reporter. Pass color=false to force plain
// output; IsTerminal reports whether a writer can render colors at all.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) HandleEvent(ev sched.Event) {
	switch ev.Kind {
	case sched.EventDrainStart:
		fmt.Fprintf(c.w, "--- scheduler starting, pending tasks: %d ---\n\n", ev.Pending)
	case sched.EventTaskStart:
		fmt.Fprintf(c.w, "%s[%s]%s running: %s\n", c.priorityColor(ev.Priority), ev.Priority, c.reset(), ev.Task)
	case sched.EventTaskDone:
		fmt.Fprintf(c.w, "%sfinished:%s %s\n\n", c.paint(colorGreen), c.reset(), ev.Task)
	case sched.EventTaskFail:
		fmt.Fprintf(c.w, "%sfailed:%s %s: %s\n\n", c.paint(colorRed), c.reset(), ev.Task, sched.Describe(ev.Err))
	case sched.EventDrainEnd:
		fmt.Fprintf(c.w, "--- all tasks finished ---\n")
	}
}

func (c *Console) priorityColor(p sched.Priority) string {
	if !c.color {
		return ""
	}
	switch p {
	case sched.PriorityHigh:
		return colorRed
	case sched.PriorityMedium:
		return colorYellow
	default:
		return colorGreen
	}
}

func (c *Console) paint(code string) string {
	if !c.color {
		return ""
	}
	return code
}

func (c *Console) reset() string {
	if !c.color {
		return ""
	}
	return colorReset
}

var _ sched.Reporter = (*Console)(nil)
