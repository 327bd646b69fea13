// Package runner implements the endless-runner simulation: a jumping player,
// procedurally generated ground obstacles that scroll toward it, a linearly
// ramping scroll speed, and cosmetic particle bursts.
//
// The Engine is advanced by an external scheduler through Tick and receives
// jump intents through RequestJump. Hosts read state through Snapshot.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// State is the run state machine's current state.
type State int

const (
	// StateIdle means no run is being simulated: before the first run or after game over.
	StateIdle State = iota
	// StateRunning means the world scrolls and physics is integrated every tick.
	StateRunning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	GameOver bool // The run ended during this tick
	Score    int  // Floor of the distance covered
}

// RunSession aggregates all mutable state of a single run.
// Starting a run replaces the whole session.
type RunSession struct {
	Player    Player
	Pace      Pace
	Obstacles *Generator
	Particles *ParticleSystem
}

// Engine is the run state machine. It is single-threaded: every method must
// be called from the goroutine driving the frame loop.
type Engine struct {
	cfg     config.RunnerConfig
	rng     Rand
	state   State
	started bool // Whether any run has begun
	session RunSession
}

// NewEngine creates an idle engine with a pre-seeded obstacle field so the
// first rendered frame is not empty.
func NewEngine(cfg config.RunnerConfig, rng Rand) *Engine {
	e := &Engine{cfg: cfg, rng: rng}
	e.session = e.newSession()
	return e
}

func (e *Engine) newSession() RunSession {
	s := RunSession{
		Player:    newPlayer(e.cfg),
		Pace:      newPace(e.cfg.Pace),
		Obstacles: NewGenerator(e.cfg.Field, e.cfg.Obstacles, e.rng),
		Particles: NewParticleSystem(e.cfg.Particles, e.rng),
	}
	s.Obstacles.Seed(s.Pace.Speed)
	return s
}

// Start replaces the session with a fresh run and begins simulating it.
func (e *Engine) Start() {
	e.session = e.newSession()
	e.state = StateRunning
	e.started = true
}

// RequestJump is the single input entry point. Before the first run it starts
// one; during a run it makes a live player jump. Otherwise it does nothing.
func (e *Engine) RequestJump() {
	switch {
	case e.state == StateIdle && !e.started:
		e.Start()
	case e.state == StateRunning && e.session.Player.Alive:
		p := &e.session.Player
		if p.TryJump() {
			e.session.Particles.EmitJump(p.X+p.W/2, p.Y+p.H)
		}
	}
}

// Tick advances the simulation by dt seconds. The delta is clamped to
// [0, clock.max_delta] before use.
func (e *Engine) Tick(dt float64) TickResult {
	dt = ClampDelta(dt, e.cfg.Clock.MaxDelta)
	s := &e.session

	if e.state != StateRunning {
		// Let the death burst finish animating
		s.Particles.Update(dt)
		return TickResult{Score: s.Pace.Score()}
	}

	step := s.Pace.Advance(dt)
	s.Obstacles.Scroll(step)
	s.Obstacles.Cull()
	s.Obstacles.Replenish(s.Pace.Speed)

	s.Player.Step(dt)

	if _, hit := FirstCollision(s.Player.Rect(), s.Obstacles.Obstacles()); hit {
		e.gameOver()
		return TickResult{GameOver: true, Score: s.Pace.Score()}
	}

	s.Particles.Update(dt)
	return TickResult{Score: s.Pace.Score()}
}

func (e *Engine) gameOver() {
	s := &e.session
	s.Player.Alive = false
	e.state = StateIdle
	cx, cy := s.Player.Center()
	s.Particles.EmitDeath(cx, cy)
}

// State returns the current state machine state.
func (e *Engine) State() State {
	return e.state
}

// Running reports whether a run is being simulated.
func (e *Engine) Running() bool {
	return e.state == StateRunning
}

// Started reports whether any run has begun since the engine was created.
func (e *Engine) Started() bool {
	return e.started
}

// GameOver reports whether the last run ended in a collision.
func (e *Engine) GameOver() bool {
	return e.started && e.state == StateIdle && !e.session.Player.Alive
}

// Distance returns the distance covered in the current run.
func (e *Engine) Distance() float64 {
	return e.session.Pace.Distance
}

// Score returns the floor of the distance covered in the current run.
func (e *Engine) Score() int {
	return e.session.Pace.Score()
}

// Speed returns the current scroll speed.
func (e *Engine) Speed() float64 {
	return e.session.Pace.Speed
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}
