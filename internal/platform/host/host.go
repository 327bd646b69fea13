// Package host drives a runner Engine from a graphical frame loop. It turns
// frame timestamps into clamped deltas and applies the controls pressed
// during the frame.
package host

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Controls are the edge-triggered inputs collected for one frame.
type Controls struct {
	Jump    bool
	Restart bool
	Pause   bool
}

// Host owns the frame clock and the pause flag of one engine.
// It is single-threaded like the engine it drives.
type Host struct {
	engine *runner.Engine
	clock  *runner.Clock
	paused bool
}

// New creates a host for the engine using its configured delta bound.
func New(engine *runner.Engine) *Host {
	return &Host{
		engine: engine,
		clock:  runner.NewClock(engine.Config().Clock.MaxDelta),
	}
}

// Frame applies the controls and advances the engine by the time elapsed
// since the previous unpaused frame.
func (h *Host) Frame(now time.Time, c Controls) runner.TickResult {
	if c.Pause {
		h.paused = !h.paused
		if !h.paused {
			h.clock.Reset()
		}
	}
	if h.paused {
		return runner.TickResult{Score: h.engine.Score()}
	}

	dt := h.clock.Step(now)
	if c.Restart && h.engine.GameOver() {
		h.engine.Start()
	}
	if c.Jump {
		h.engine.RequestJump()
	}
	return h.engine.Tick(dt)
}

// Paused reports whether the frame loop is paused.
func (h *Host) Paused() bool {
	return h.paused
}

// Engine returns the driven engine.
func (h *Host) Engine() *runner.Engine {
	return h.engine
}

// ParallaxOffset returns the horizontal shift in [0, spacing) of a repeating
// background layer that scrolls at factor times the world speed.
func ParallaxOffset(distance, factor, spacing float64) float64 {
	if spacing <= 0 {
		return 0
	}
	return math.Mod(distance*factor, spacing)
}
