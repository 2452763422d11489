package job

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"taskflow/internal/sched"
)

// taskNames is the pool demo task names are drawn from.
var taskNames = []string{
	"system scan", "data sync", "mail delivery", "cache cleanup",
	"security audit", "log rotation", "frontend build", "model inference",
}

var priorities = [...]sched.Priority{
	sched.PriorityHigh,
	sched.PriorityMedium,
	sched.PriorityLow,
}

// Generator produces sample tasks with random priorities and durations.
// The same seed always yields the same sequence of tasks.
type Generator struct {
	rng     *rand.Rand
	maxSecs int64
	logger  *slog.Logger
}

// NewGenerator creates a generator drawing durations from [1, maxSecs]
// seconds. Seed 0 derives a seed from the wall clock.
func NewGenerator(seed, maxSecs int64, logger *slog.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxSecs <= 0 {
		maxSecs = 10
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		maxSecs: maxSecs,
		logger:  logger,
	}
}

// Populate submits count random tasks to the scheduler.
func (g *Generator) Populate(s *sched.Scheduler, count int) error {
	g.logger.Info("generating tasks", "count", count)

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("task %02d: %s", i, taskNames[g.rng.Intn(len(taskNames))])
		priority := priorities[g.rng.Intn(len(priorities))]
		duration := time.Duration(g.rng.Int63n(g.maxSecs)+1) * time.Second

		if err := s.AddTask(priority, sched.NewSimpleTask(name, duration)); err != nil {
			return fmt.Errorf("add task %q: %w", name, err)
		}

		g.logger.Info("task added",
			"task", name,
			"priority", priority.String(),
			"duration", duration,
		)
	}

	return nil
}
