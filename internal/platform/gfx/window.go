// Package gfx hosts the runner in a desktop window using Ebitengine.
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/platform/host"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Window implements ebiten.Game on top of a host.Host.
type Window struct {
	host   *host.Host
	logger *log.Logger
	body   *ebiten.Image // 1x1 white pixel scaled into the player's body
	width  int
	height int
}

// NewWindow creates a window for the engine. logger may be nil.
func NewWindow(engine *runner.Engine, logger *log.Logger) *Window {
	cfg := engine.Config()
	body := ebiten.NewImage(1, 1)
	body.Fill(color.White)
	return &Window{
		host:   host.New(engine),
		logger: logger,
		body:   body,
		width:  int(cfg.Field.Width),
		height: int(cfg.Field.Height),
	}
}

// controls reads the inputs pressed since the previous frame.
func controls() host.Controls {
	return host.Controls{
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Update is called by Ebitengine once per frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	res := w.host.Frame(time.Now(), controls())
	if res.GameOver && w.logger != nil {
		w.logger.Info("run ended", "score", res.Score, "speed", fmt.Sprintf("%.0f", w.host.Engine().Speed()))
	}
	return nil
}

// Layout keeps the logical screen at the field size; Ebitengine scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(engine *runner.Engine, logger *log.Logger, scale float64) error {
	w := NewWindow(engine, logger)
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle("Endless Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
