package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// PlayerView is a read-only copy of the player pose.
type PlayerView struct {
	X, Y     float64
	W, H     float64
	VY       float64
	Tilt     float64 // Advisory render rotation in radians
	Grounded bool
	Alive    bool
}

// Rect returns the player's rectangle.
func (p PlayerView) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ParticleView is a read-only copy of a particle for rendering.
type ParticleView struct {
	X, Y   float64
	Radius float64
	Color  core.Color
	Alpha  float64 // Fraction of life remaining in [0, 1]
}

// Snapshot is a copy of everything a renderer needs after a tick.
// Mutating it has no effect on the engine.
type Snapshot struct {
	Player    PlayerView
	Obstacles []Obstacle
	Particles []ParticleView
	State     State
	Started   bool
	Distance  float64
	Score     int
	Speed     float64

	FieldWidth  float64
	FieldHeight float64
	GroundY     float64
}

// Running reports whether the snapshot was taken during a run.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

// Snapshot copies the current state for a renderer or an input layer.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Player:      e.Player(),
		Obstacles:   e.Obstacles(),
		Particles:   e.Particles(),
		State:       e.state,
		Started:     e.started,
		Distance:    e.Distance(),
		Score:       e.Score(),
		Speed:       e.Speed(),
		FieldWidth:  e.cfg.Field.Width,
		FieldHeight: e.cfg.Field.Height,
		GroundY:     e.cfg.Field.GroundY,
	}
}

// Player returns a copy of the player pose.
func (e *Engine) Player() PlayerView {
	p := &e.session.Player
	return PlayerView{
		X:        p.X,
		Y:        p.Y,
		W:        p.W,
		H:        p.H,
		VY:       p.VY,
		Tilt:     p.Tilt(),
		Grounded: p.Grounded,
		Alive:    p.Alive,
	}
}

// Obstacles returns a copy of the active obstacles, left to right.
func (e *Engine) Obstacles() []Obstacle {
	src := e.session.Obstacles.Obstacles()
	out := make([]Obstacle, len(src))
	copy(out, src)
	return out
}

// Particles returns render views of the live particles.
func (e *Engine) Particles() []ParticleView {
	src := e.session.Particles.Particles()
	out := make([]ParticleView, len(src))
	for i, p := range src {
		out[i] = ParticleView{
			X:      p.X,
			Y:      p.Y,
			Radius: p.Radius,
			Color:  p.Color,
			Alpha:  p.Remaining(),
		}
	}
	return out
}
