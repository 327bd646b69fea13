package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// presetGame is implemented by games that support difficulty presets.
type presetGame interface {
	SetPreset(config.DifficultyPreset)
	Preset() config.DifficultyPreset
}

// CreateGame instantiates a registered game and selects the preset when the
// game supports one.
func CreateGame(id string, preset config.DifficultyPreset) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if pg, ok := game.(presetGame); ok {
		pg.SetPreset(preset)
	}
	return game, nil
}

// Model is the Bubble Tea model that drives one game.
// Frame deltas come from the timestamps of TickMsg, never from the tick rate.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	clock      *runner.Clock
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runs       *RunLog
	runTime    float64 // Seconds simulated in the current run
	paused     bool
	embedded   bool // Back returns to a parent menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game. runs may be nil.
func NewModel(game registry.Game, cfg core.RuntimeConfig, runs *RunLog) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = core.DefaultConfig().MaxDelta
	}

	km := NewKeyMapper()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		clock:      runner.NewClock(cfg.MaxDelta),
		config:     cfg,
		keyMapper:  km,
		keys:       km.Keys(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		runs:       runs,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.embedded && (m.paused || !m.gameState.Running) {
			m.backToMenu = true
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.togglePause()
	case action != core.ActionNone && !m.paused:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// togglePause stops or resumes the host loop. The clock is reset on resume
// so the paused wall time never reaches the simulation.
func (m *Model) togglePause() {
	m.paused = !m.paused
	if !m.paused {
		m.clock.Reset()
	}
	m.inputFrame.Clear()
}

// handleResize processes window resize events. The game projects onto any
// screen size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	dt := m.clock.Step(now)
	result := m.game.Step(m.inputFrame, dt)

	if result.State.Running {
		if !m.gameState.Running {
			m.runTime = 0
		}
		m.runTime += dt
	}
	m.gameState = result.State

	if result.GameOverNow {
		m.recordRun(now)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun appends the run that just ended to the session log.
func (m *Model) recordRun(now time.Time) {
	if m.runs == nil {
		return
	}
	rec := RunRecord{
		Game:     m.game.ID(),
		Score:    m.gameState.Score,
		Duration: time.Duration(m.runTime * float64(time.Second)),
		EndedAt:  now,
	}
	if pg, ok := m.game.(presetGame); ok {
		rec.Preset = string(pg.Preset())
	}
	m.runs.Add(rec)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.paused {
		footer = pausedStyle.Render("PAUSED") + " " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the host loop is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given game. runs may be nil.
func Run(game registry.Game, cfg core.RuntimeConfig, runs *RunLog) error {
	p := tea.NewProgram(
		NewModel(game, cfg, runs),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
