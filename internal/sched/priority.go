// internal/sched/priority.go

package sched

// Priority ranks a queued task. Lower rank runs first.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// rank is the comparison key: High before Medium before Low.
func (p Priority) rank() int { return int(p) }
