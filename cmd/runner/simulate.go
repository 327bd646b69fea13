package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagLead     float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games",
	Long: `Drive the simulation without any renderer. An autopilot jumps when the
nearest obstacle is within reach, using a fixed frame delta of 1/fps.
Run i uses seed+i, so results are reproducible for a given seed.

Examples:
  runner simulate
  runner simulate --runs 50 --seed 1 --difficulty hard
  runner simulate --lead 0.15 --max-ticks 36000`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 18000, "Tick budget per run")
	simulateCmd.Flags().Float64Var(&flagLead, "lead", runner.DefaultAutopilot().Lead, "Autopilot reaction lead in seconds")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagRuns <= 0 || flagMaxTicks <= 0 || flagFPS <= 0 {
		return fmt.Errorf("--runs, --max-ticks and --fps must be positive")
	}

	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	logger := newLogger("simulate")
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pilot := runner.Autopilot{Lead: flagLead}
	dt := 1 / float64(flagFPS)

	var best runner.RunResult
	total, crashes := 0, 0
	for i := range flagRuns {
		engine := runner.NewEngine(cfg, runner.NewRand(seed+int64(i)))
		res := runner.Simulate(engine, pilot, dt, flagMaxTicks)

		logger.Info("run finished",
			"run", i+1,
			"seed", seed+int64(i),
			"score", res.Score,
			"speed", fmt.Sprintf("%.0f", res.Speed),
			"ticks", res.Ticks,
			"crashed", res.Crashed,
		)

		total += res.Score
		if res.Crashed {
			crashes++
		}
		if res.Score > best.Score {
			best = res
		}
	}

	logger.Info("summary",
		"runs", flagRuns,
		"best", best.Score,
		"mean", total/flagRuns,
		"crashes", crashes,
	)
	return nil
}
