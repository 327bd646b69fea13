// runner is an endless-runner game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	runner list              - List available games
//	runner play [game]       - Play a game in the terminal
//	runner menu              - Pick a difficulty interactively
//	runner window            - Play in a desktop window
//	runner serve             - Start SSH server for remote play
//	runner simulate          - Run headless autopilot games
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump over obstacles for as long as you can",
	Long: `Endless Runner is a side-scrolling game: the world scrolls faster and
faster while you jump over the obstacles it throws at you.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  menu      - Interactive difficulty picker
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run headless autopilot games
  config    - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard
  runner window --scale 1.5
  runner serve --ssh :2222
  runner simulate --runs 20 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger writing to stderr.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// loadBaseConfig loads the runner config from --config and installs it as the
// base for every game created afterwards. The preset is returned separately
// so hosts can apply it per game.
func loadBaseConfig() (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	runner.SetConfig(cfg)
	return cfg, preset, nil
}

// loadEffectiveConfig returns the base config with the preset applied.
func loadEffectiveConfig() (config.RunnerConfig, error) {
	cfg, preset, err := loadBaseConfig()
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
