package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskflow/internal/config"
	"taskflow/internal/job"
	"taskflow/internal/logging"
	"taskflow/internal/report"
	"taskflow/internal/sched"
)

// newRootCmd creates the root cobra command for taskflow.
func newRootCmd() *cobra.Command {
	var (
		flagConfig    string
		flagCount     int
		flagSeed      int64
		flagLogLevel  string
		flagLogFormat string
		flagNoColor   bool
		flagCSV       string
	)

	root := &cobra.Command{
		Use:   "taskflow",
		Short: "taskflow — priority-ordered task scheduler",
		Long: `taskflow generates a batch of sample tasks and drains them through a
shared priority queue, highest priority first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(flagConfig)
			if cmd.Flags().Changed("count") {
				cfg.TaskCount = flagCount
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = flagSeed
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}

			// stderr carries logs, stdout carries the drain narration
			logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

			scheduler := sched.New(logger)

			color := !flagNoColor && report.IsTerminal(os.Stdout)
			reporter := sched.Reporter(report.NewConsole(os.Stdout, color))
			if flagCSV != "" {
				csvReporter, err := report.NewCSV(flagCSV)
				if err != nil {
					return fmt.Errorf("open csv log: %w", err)
				}
				defer csvReporter.Close()
				reporter = report.Multi(reporter, csvReporter)
			}
			scheduler.SetReporter(reporter)

			gen := job.NewGenerator(cfg.Seed, cfg.MaxTaskSecs, logger)
			if err := gen.Populate(scheduler, cfg.TaskCount); err != nil {
				return err
			}

			return scheduler.RunAll(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&flagConfig, "config", "config.yml", "Path to YAML config (missing file = defaults)")
	root.Flags().IntVar(&flagCount, "count", 10, "Number of tasks to generate")
	root.Flags().Int64Var(&flagSeed, "seed", 0, "Generator seed (0 = derive from clock)")
	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.Flags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.Flags().StringVar(&flagCSV, "csv", "", "Write drain events to this CSV file")

	return root
}
