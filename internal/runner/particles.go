package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Particle is a cosmetic spark. It never takes part in physics or collision.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64 // Reference frames lived so far
	Life   float64 // Frames after which the particle expires
	Radius float64
	Color  core.Color
}

// Remaining returns the fraction of life left in [0, 1], used for alpha.
func (p Particle) Remaining() float64 {
	if p.Life <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.Life, 0, 1)
}

// ParticleSystem owns every live particle and their kinematics.
type ParticleSystem struct {
	cfg        config.ParticleConfig
	jumpColor  core.Color
	deathColor core.Color
	rng        Rand
	particles  []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig, rng Rand) *ParticleSystem {
	jumpColor, ok := core.ParseColor(cfg.Jump.Color)
	if !ok {
		jumpColor = core.ColorOrange
	}
	deathColor, ok := core.ParseColor(cfg.Death.Color)
	if !ok {
		deathColor = core.ColorBrightCyan
	}
	return &ParticleSystem{
		cfg:        cfg,
		jumpColor:  jumpColor,
		deathColor: deathColor,
		rng:        rng,
		particles:  make([]Particle, 0, cfg.Death.Count+cfg.Jump.Count),
	}
}

// Update ages every particle, removes the expired ones and integrates the rest.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	frames := dt * ps.cfg.FrameRate
	damping := math.Pow(ps.cfg.Damping, frames)

	for i := 0; i < len(ps.particles); {
		p := &ps.particles[i]
		p.Age += frames
		if p.Age >= p.Life {
			// Swap-remove; particle order is irrelevant.
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
			continue
		}

		p.VY += ps.cfg.Gravity * dt
		p.VX *= damping
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}

// EmitJump releases the small upward burst at the player's feet.
func (ps *ParticleSystem) EmitJump(x, y float64) {
	ps.burst(ps.cfg.Jump, ps.jumpColor, x, y)
}

// EmitDeath releases the large omnidirectional burst at the player's center.
func (ps *ParticleSystem) EmitDeath(x, y float64) {
	ps.burst(ps.cfg.Death, ps.deathColor, x, y)
}

func (ps *ParticleSystem) burst(b config.BurstConfig, color core.Color, x, y float64) {
	for range b.Count {
		angle := b.Angle + (ps.rng.Float64()-0.5)*b.Spread
		speed := between(ps.rng, b.MinSpeed, b.MaxSpeed)
		ps.particles = append(ps.particles, Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Life:   between(ps.rng, b.MinLife, b.MaxLife),
			Radius: between(ps.rng, b.MinRadius, b.MaxRadius),
			Color:  color,
		})
	}
}

// Particles returns the live particles. The slice is owned by the system.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
