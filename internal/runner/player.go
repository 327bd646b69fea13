package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner's avatar. X is fixed; only the vertical axis moves.
type Player struct {
	X, Y     float64 // Top-left corner in world units
	W, H     float64
	VY       float64 // Vertical velocity, positive = down
	Grounded bool
	Alive    bool

	physics config.PhysicsConfig
	groundY float64
}

// newPlayer returns a live player resting on the ground line.
func newPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X:        cfg.Player.X,
		Y:        cfg.Field.GroundY - cfg.Player.Height,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		Grounded: true,
		Alive:    true,
		physics:  cfg.Physics,
		groundY:  cfg.Field.GroundY,
	}
}

// ApplyGravity accelerates the player downward. It runs before
// IntegratePosition so velocity updates first (semi-implicit Euler).
func (p *Player) ApplyGravity(dt float64) {
	p.VY += p.physics.Gravity * dt
}

// IntegratePosition moves the player by its current velocity.
func (p *Player) IntegratePosition(dt float64) {
	p.Y += p.VY * dt
}

// ResolveGroundCollision snaps a player whose bottom edge reached the ground
// line back onto it and updates the grounded flag.
func (p *Player) ResolveGroundCollision() {
	if p.Y+p.H >= p.groundY {
		p.Y = p.groundY - p.H
		p.VY = 0
		p.Grounded = true
		return
	}
	p.Grounded = false
}

// Step runs one physics integration: gravity, position, ground.
func (p *Player) Step(dt float64) {
	p.ApplyGravity(dt)
	p.IntegratePosition(dt)
	p.ResolveGroundCollision()
}

// TryJump applies the jump impulse when the player is grounded or falling
// within the coyote window above the ground line. Returns whether it jumped.
func (p *Player) TryJump() bool {
	if !p.canJump() {
		return false
	}
	p.VY = p.physics.JumpVelocity
	p.Grounded = false
	return true
}

func (p *Player) canJump() bool {
	if p.Grounded {
		return true
	}
	// Coyote time: still moving down and close to the ground line
	return p.VY > 0 && p.Y+p.H >= p.groundY-p.physics.CoyoteWindow
}

// Tilt returns the advisory render rotation in radians derived from the
// vertical velocity. It has no physical effect.
func (p *Player) Tilt() float64 {
	return core.ClampF(p.VY*p.physics.TiltFactor, -p.physics.MaxTilt, p.physics.MaxTilt)
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the center of the player's rectangle.
func (p *Player) Center() (float64, float64) {
	return p.Rect().Center()
}
