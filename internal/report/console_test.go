package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"taskflow/internal/sched"
)

func TestConsolePlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	now := time.Now()
	events := []sched.Event{
		{Time: now, Kind: sched.EventDrainStart, Pending: 2},
		{Time: now, Kind: sched.EventTaskStart, Priority: sched.PriorityHigh, Task: "backup"},
		{Time: now, Kind: sched.EventTaskDone, Priority: sched.PriorityHigh, Task: "backup"},
		{Time: now, Kind: sched.EventTaskStart, Priority: sched.PriorityLow, Task: "cleanup"},
		{Time: now, Kind: sched.EventTaskFail, Priority: sched.PriorityLow, Task: "cleanup", Err: &sched.ExecutionError{Reason: "boom"}},
		{Time: now, Kind: sched.EventDrainEnd},
	}
	for _, ev := range events {
		c.HandleEvent(ev)
	}

	out := buf.String()
	wantLines := []string{
		"--- scheduler starting, pending tasks: 2 ---",
		"[High] running: backup",
		"finished: backup",
		"[Low] running: cleanup",
		"failed: cleanup: execution failed: boom",
		"--- all tasks finished ---",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain output contains ANSI escapes:\n%q", out)
	}
}

func TestConsoleColorOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.HandleEvent(sched.Event{Kind: sched.EventTaskStart, Priority: sched.PriorityHigh, Task: "backup"})
	c.HandleEvent(sched.Event{Kind: sched.EventTaskStart, Priority: sched.PriorityMedium, Task: "sync"})

	out := buf.String()
	if !strings.Contains(out, colorRed+"[High]") {
		t.Errorf("High priority not painted red:\n%q", out)
	}
	if !strings.Contains(out, colorYellow+"[Medium]") {
		t.Errorf("Medium priority not painted yellow:\n%q", out)
	}
	if !strings.Contains(out, colorReset) {
		t.Errorf("colored output never resets:\n%q", out)
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(bytes.Buffer) = true, want false")
	}
}
