package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/host"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	skyColor      = color.RGBA{18, 22, 36, 255}
	hillColor     = color.RGBA{32, 40, 62, 255}
	groundColor   = color.RGBA{52, 58, 74, 255}
	stripeColor   = color.RGBA{84, 92, 112, 255}
	shadeColor    = color.RGBA{0, 0, 0, 160}
	obstacleColor = core.ColorGreen.ToRGBA()
	playerColor   = core.ColorWhite.ToRGBA()
	deadColor     = core.ColorBrightRed.ToRGBA()
)

// Background layers: a slow hill band and fast ground stripes.
const (
	hillFactor    = 0.2
	hillSpacing   = 240
	hillWidth     = 140
	stripeFactor  = 1.0
	stripeSpacing = 48
	stripeWidth   = 20
)

// Draw is called by Ebitengine to render the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.host.Engine().Snapshot()

	screen.Fill(skyColor)
	w.drawBackground(screen, snap)

	for _, o := range snap.Obstacles {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), obstacleColor, false)
	}

	w.drawPlayer(screen, snap.Player)

	for _, p := range snap.Particles {
		c := core.Fade(p.Color.ToRGBA(), p.Alpha)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	}

	w.drawHUD(screen, snap)
}

// drawBackground renders the parallax layers and the ground.
func (w *Window) drawBackground(screen *ebiten.Image, snap runner.Snapshot) {
	ground := float32(snap.GroundY)
	width := float32(snap.FieldWidth)

	off := float32(host.ParallaxOffset(snap.Distance, hillFactor, hillSpacing))
	for x := -off; x < width; x += hillSpacing {
		vector.DrawFilledRect(screen, x, ground-60, hillWidth, 60, hillColor, false)
	}

	vector.DrawFilledRect(screen, 0, ground, width, float32(snap.FieldHeight)-ground, groundColor, false)

	off = float32(host.ParallaxOffset(snap.Distance, stripeFactor, stripeSpacing))
	for x := -off; x < width; x += stripeSpacing {
		vector.DrawFilledRect(screen, x, ground+8, stripeWidth, 3, stripeColor, false)
	}
}

// drawPlayer renders the player rotated by its advisory tilt around its center.
func (w *Window) drawPlayer(screen *ebiten.Image, p runner.PlayerView) {
	c := playerColor
	if !p.Alive {
		c = deadColor
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.W, p.H)
	op.GeoM.Translate(-p.W/2, -p.H/2)
	op.GeoM.Rotate(p.Tilt)
	op.GeoM.Translate(p.X+p.W/2, p.Y+p.H/2)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(w.body, op)
}

// drawHUD prints the score line and the idle, pause and game over prompts.
func (w *Window) drawHUD(screen *ebiten.Image, snap runner.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   SPEED %.0f", snap.Score, snap.Speed), 12, 10)

	var lines string
	switch {
	case w.host.Paused():
		lines = "PAUSED\n\nP to resume"
	case !snap.Started:
		lines = "ENDLESS RUNNER\n\nSPACE or click to start"
	case w.host.Engine().GameOver():
		lines = fmt.Sprintf("GAME OVER\n\nScore: %d\nR to restart", snap.Score)
	default:
		return
	}

	cx, cy := float32(snap.FieldWidth)/2, float32(snap.FieldHeight)/2
	vector.DrawFilledRect(screen, cx-120, cy-50, 240, 90, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, lines, int(cx)-100, int(cy)-40)
}
