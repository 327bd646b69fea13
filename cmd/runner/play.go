package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to "runner".

Controls:
  Space/Up/W   - Jump (the first jump starts the run)
  R/Enter      - Restart after game over
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentle speed ramp
  normal - Configured speed and ramp
  hard   - Faster start, steeper ramp
  fixed  - Configured speed, no ramp

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig(cfg config.RunnerConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		MaxDelta: cfg.Clock.MaxDelta,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "runner"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'runner list' to see available games", gameID)
	}

	cfg, preset, err := loadBaseConfig()
	if err != nil {
		return err
	}

	game, err := tui.CreateGame(gameID, preset)
	if err != nil {
		return err
	}

	if err := tui.Run(game, terminalConfig(cfg), nil); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
