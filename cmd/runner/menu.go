package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
After a game ends, press Q to return to the menu. Tab shows the
runs finished during this session.

Examples:
  runner menu
  runner menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, _, err := loadBaseConfig()
	if err != nil {
		return err
	}

	logger := newLogger("runner")
	cfg := terminalConfig(base)
	runs := tui.NewRunLog(0)

	for {
		res, err := tui.RunMenu(cfg, runs)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantRuns {
			goBack, err := tui.RunRuns(runs, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := tui.CreateGame(res.GameID, res.Preset)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, runs); err != nil {
			logger.Error("game exited", "error", err)
		}
	}
}
