package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/gfx"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window rendering the runner with particles, tilt and
parallax.

Controls:
  Space/Up/W/Click  - Jump (the first jump starts the run)
  R/Enter           - Restart after game over
  P/Esc             - Pause
  Q                 - Quit

Examples:
  runner window
  runner window --scale 2 --difficulty hard`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := runner.NewEngine(cfg, runner.NewRand(seed))
	return gfx.Run(engine, newLogger("runner"), flagScale)
}
