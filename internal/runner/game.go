package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Visual characters for terminal rendering
const (
	PlayerBody    = '█'
	PlayerRise    = '▲'
	PlayerFall    = '▼'
	ObstacleChar  = '▓'
	GroundChar    = '═'
	ParticleDense = '•'
	ParticleFaint = '·'
)

// Game adapts the Engine to the platform's registry.Game contract and
// projects world units onto the terminal cell grid.
type Game struct {
	engine *Engine
	cfg    config.RunnerConfig
	preset config.DifficultyPreset
}

// gameConfig stores the configuration set via CLI
var gameConfig *config.RunnerConfig

// SetConfig overrides the configuration used by games created afterwards.
func SetConfig(cfg config.RunnerConfig) {
	gameConfig = &cfg
}

// New creates a new runner game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// SetPreset selects a difficulty preset applied on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Preset returns the selected difficulty preset, empty when none.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset builds a fresh idle engine seeded from the runtime config.
// The screen size is not needed: Render projects onto whatever it is given.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if gameConfig != nil {
		g.cfg = *gameConfig
	} else {
		cfg, err := config.LoadRunner("")
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		g.cfg = cfg
	}
	config.ApplyPreset(&g.cfg, g.preset)

	g.engine = NewEngine(g.cfg, NewRand(runtime.Seed))
}

// Step applies the frame's input and advances the engine by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.engine.Start()
	}
	if in.Has(core.ActionJump) {
		g.engine.RequestJump()
	}

	res := g.engine.Tick(dt)
	return core.StepResult{
		State:       g.State(),
		GameOverNow: res.GameOver,
	}
}

// Engine exposes the underlying simulation to hosts that render snapshots.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Running:  g.engine.Running(),
		GameOver: g.engine.GameOver(),
	}
}

// projection maps world coordinates to screen cells. Row 0 is the HUD.
type projection struct {
	sx, sy float64
	top    int
}

func (g *Game) projection(dst *core.Screen) projection {
	rows := max(dst.Height()-1, 1)
	return projection{
		sx:  float64(dst.Width()) / g.cfg.Field.Width,
		sy:  float64(rows) / g.cfg.Field.Height,
		top: 1,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return p.top + int(math.Floor(y*p.sy))
}

// span converts a world interval into at least one cell.
func (p projection) span(lo, hi float64, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	return a, max(a, b)
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.engine.Snapshot()
	proj := g.projection(dst)
	groundRow := proj.row(snap.GroundY)

	// Ground
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, proj, o, groundRow)
	}

	g.drawPlayer(dst, proj, snap.Player, groundRow)

	for _, p := range snap.Particles {
		ch := ParticleFaint
		if p.Alpha > 0.5 {
			ch = ParticleDense
		}
		dst.SetColored(proj.col(p.X), proj.row(p.Y), ch, p.Color)
	}

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)
	speedText := fmt.Sprintf(" Spd: %.0f ", snap.Speed)
	dst.DrawTextColored(dst.Width()-len(speedText)-2, 0, speedText, core.ColorGray)

	switch {
	case !snap.Started:
		g.drawCenteredMessage(dst, "ENDLESS RUNNER", "Press SPACE to start")
	case g.engine.GameOver():
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawObstacle renders a single obstacle resting on the ground row.
func (g *Game) drawObstacle(dst *core.Screen, proj projection, o Obstacle, groundRow int) {
	x0, x1 := proj.span(o.X, o.Right(), proj.sx)
	top := min(proj.row(o.Y), groundRow-1)
	dst.FillRect(x0, top, x1-x0+1, groundRow-top, ObstacleChar, core.ColorGreen)
}

// drawPlayer renders the player; the top cell hints at the tilt direction.
func (g *Game) drawPlayer(dst *core.Screen, proj projection, p PlayerView, groundRow int) {
	x0, x1 := proj.span(p.X, p.X+p.W, proj.sx)
	top := proj.row(p.Y)
	bottom := min(proj.row(p.Y+p.H)-1, groundRow-1)
	bottom = max(bottom, top)

	color := core.ColorWhite
	if !p.Alive {
		color = core.ColorRed
	}
	dst.FillRect(x0, top, x1-x0+1, bottom-top+1, PlayerBody, color)

	head := PlayerBody
	switch {
	case p.Tilt < -0.1:
		head = PlayerRise
	case p.Tilt > 0.1:
		head = PlayerFall
	}
	dst.SetColored(x1, top, head, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      "runner",
		Title:   "Endless Runner",
		Summary: "Jump over obstacles while the world speeds up",
	}, func() registry.Game {
		return New()
	})
}
