package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const frame = 1.0 / 60

func newTestEngine(seed int64) *Engine {
	return NewEngine(config.DefaultRunnerConfig(), NewRand(seed))
}

// placeObstacleOnPlayer replaces the field with one obstacle overlapping the player.
func placeObstacleOnPlayer(e *Engine) {
	p := e.session.Player
	e.session.Obstacles.obstacles = []Obstacle{
		{X: p.X - 20, Y: p.Y + 10, W: 60, H: p.H - 10},
	}
}

func TestNewEngineIsIdleWithSeededField(t *testing.T) {
	e := newTestEngine(1)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, expected %v", e.State(), StateIdle)
	}
	if e.Started() || e.GameOver() {
		t.Errorf("Started()/GameOver() = %v/%v, expected false/false", e.Started(), e.GameOver())
	}
	if len(e.Obstacles()) == 0 {
		t.Error("expected a pre-seeded obstacle field")
	}
	if e.Distance() != 0 || e.Score() != 0 {
		t.Errorf("Distance()/Score() = %v/%v, expected 0/0", e.Distance(), e.Score())
	}
}

func TestIdleTickDoesNotSimulate(t *testing.T) {
	e := newTestEngine(1)
	before := e.Obstacles()

	res := e.Tick(frame)

	if res.GameOver || res.Score != 0 {
		t.Errorf("Tick() = %+v, expected no game over and score 0", res)
	}
	after := e.Obstacles()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("obstacle %d moved while idle: %+v -> %+v", i, before[i], after[i])
		}
	}
	if e.Distance() != 0 {
		t.Errorf("Distance() = %v, expected 0", e.Distance())
	}
}

func TestFirstJumpStartsRun(t *testing.T) {
	e := newTestEngine(1)
	e.RequestJump()

	if e.State() != StateRunning {
		t.Fatalf("State() = %v, expected %v", e.State(), StateRunning)
	}
	if e.Distance() != 0 {
		t.Errorf("Distance() = %v, expected 0 at run start", e.Distance())
	}
	if e.Speed() != e.cfg.Pace.BaseSpeed {
		t.Errorf("Speed() = %v, expected %v", e.Speed(), e.cfg.Pace.BaseSpeed)
	}
	// Starting is not a jump
	if !e.Player().Grounded {
		t.Error("player left the ground on the start request")
	}
}

func TestJumpDuringRun(t *testing.T) {
	e := newTestEngine(1)
	e.Start()
	e.RequestJump()

	p := e.Player()
	if p.VY != e.cfg.Physics.JumpVelocity || p.Grounded {
		t.Errorf("after jump: vy=%v grounded=%v, expected vy=%v airborne", p.VY, p.Grounded, e.cfg.Physics.JumpVelocity)
	}
	if got := len(e.Particles()); got != e.cfg.Particles.Jump.Count {
		t.Errorf("particles = %d, expected %d", got, e.cfg.Particles.Jump.Count)
	}

	// A second request in the air is ignored
	e.RequestJump()
	if e.Player().VY != e.cfg.Physics.JumpVelocity {
		t.Errorf("air jump changed vy to %v", e.Player().VY)
	}
	if got := len(e.Particles()); got != e.cfg.Particles.Jump.Count {
		t.Errorf("air jump emitted particles: %d, expected %d", got, e.cfg.Particles.Jump.Count)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	e := newTestEngine(1)
	e.Start()
	placeObstacleOnPlayer(e)

	res := e.Tick(frame)
	if !res.GameOver {
		t.Fatal("Tick() GameOver = false, expected true")
	}
	if e.State() != StateIdle || !e.GameOver() {
		t.Errorf("State()/GameOver() = %v/%v, expected Idle/true", e.State(), e.GameOver())
	}
	if e.Player().Alive {
		t.Error("player still alive after collision")
	}
	if got := len(e.Particles()); got != e.cfg.Particles.Death.Count {
		t.Errorf("particles = %d, expected death burst of %d", got, e.cfg.Particles.Death.Count)
	}

	// GameOver is reported once; idle ticks only animate the burst away
	distance := e.Distance()
	for range 100 {
		if e.Tick(frame * 3).GameOver {
			t.Fatal("GameOver reported again while idle")
		}
	}
	if e.Distance() != distance {
		t.Errorf("Distance() = %v after game over, expected %v", e.Distance(), distance)
	}
	if got := len(e.Particles()); got != 0 {
		t.Errorf("particles = %d after the burst expired, expected 0", got)
	}
}

func TestJumpAfterGameOverIsIgnored(t *testing.T) {
	e := newTestEngine(1)
	e.Start()
	placeObstacleOnPlayer(e)
	e.Tick(frame)

	e.RequestJump()
	if e.State() != StateIdle || !e.GameOver() {
		t.Errorf("State()/GameOver() = %v/%v, expected Idle/true", e.State(), e.GameOver())
	}
}

func TestStartAfterGameOverResetsRun(t *testing.T) {
	e := newTestEngine(1)
	e.Start()
	for range 30 {
		e.Tick(frame)
	}
	placeObstacleOnPlayer(e)
	e.Tick(frame)

	e.Start()

	if e.State() != StateRunning || e.GameOver() {
		t.Errorf("State()/GameOver() = %v/%v, expected Running/false", e.State(), e.GameOver())
	}
	if e.Distance() != 0 || e.Speed() != e.cfg.Pace.BaseSpeed {
		t.Errorf("Distance()/Speed() = %v/%v, expected 0/%v", e.Distance(), e.Speed(), e.cfg.Pace.BaseSpeed)
	}
	p := e.Player()
	if !p.Alive || !p.Grounded {
		t.Errorf("player = %+v, expected alive and grounded", p)
	}
	if len(e.Particles()) != 0 {
		t.Errorf("particles = %d, expected 0", len(e.Particles()))
	}
	if len(e.Obstacles()) == 0 {
		t.Error("expected a re-seeded obstacle field")
	}
}

func TestTickClampsDelta(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		name     string
		dt       float64
		expected float64
	}{
		{"huge delta clamped", 10, cfg.Pace.BaseSpeed * cfg.Clock.MaxDelta},
		{"negative delta ignored", -5, 0},
		{"zero delta", 0, 0},
		{"NaN delta ignored", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(cfg, NewRand(1))
			e.Start()
			e.Tick(tt.dt)
			if math.Abs(e.Distance()-tt.expected) > 1e-9 {
				t.Errorf("Distance() = %v, expected %v", e.Distance(), tt.expected)
			}
		})
	}
}

func TestRunInvariants(t *testing.T) {
	e := newTestEngine(99)
	cfg := e.Config()
	pilot := DefaultAutopilot()
	e.Start()

	prevDistance, prevSpeed := 0.0, cfg.Pace.BaseSpeed
	for i := range 4000 {
		if pilot.ShouldJump(e.Snapshot()) {
			e.RequestJump()
		}
		if e.Tick(frame).GameOver {
			e.Start()
			prevDistance, prevSpeed = 0, cfg.Pace.BaseSpeed
			continue
		}

		if e.Distance() < prevDistance {
			t.Fatalf("tick %d: distance decreased %v -> %v", i, prevDistance, e.Distance())
		}
		if e.Speed() < prevSpeed {
			t.Fatalf("tick %d: speed decreased %v -> %v", i, prevSpeed, e.Speed())
		}
		prevDistance, prevSpeed = e.Distance(), e.Speed()

		obs := e.Obstacles()
		if len(obs) == 0 {
			t.Fatalf("tick %d: obstacle buffer ran empty", i)
		}
		if last := obs[len(obs)-1]; last.X-cfg.Field.Width > cfg.Obstacles.Lookahead {
			t.Fatalf("tick %d: obstacle at %v beyond the lookahead horizon", i, last.X)
		}
		for j, o := range obs {
			if o.Right() <= cfg.Field.LeftCull {
				t.Fatalf("tick %d: obstacle %d left the field but was not culled", i, j)
			}
			if j > 0 && o.X < obs[j-1].Right() {
				t.Fatalf("tick %d: obstacles out of order", i)
			}
		}

		if p := e.Player(); p.Y+p.H > cfg.Field.GroundY+1e-9 {
			t.Fatalf("tick %d: player below ground: %+v", i, p)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := newTestEngine(1)
	e.Start()
	e.RequestJump()

	snap := e.Snapshot()
	x := snap.Obstacles[0].X
	snap.Obstacles[0].X = -999
	snap.Player.Y = -999

	if e.Obstacles()[0].X != x {
		t.Error("mutating the snapshot obstacles changed the engine")
	}
	if e.Player().Y == -999 {
		t.Error("mutating the snapshot player changed the engine")
	}
	if !snap.Running() || !snap.Started {
		t.Errorf("snapshot state = %v started=%v, expected running", snap.State, snap.Started)
	}
	if snap.FieldWidth != e.cfg.Field.Width || snap.GroundY != e.cfg.Field.GroundY {
		t.Errorf("snapshot field = %vx%v, expected the configured field", snap.FieldWidth, snap.GroundY)
	}
	for _, p := range snap.Particles {
		if p.Alpha != 1 {
			t.Errorf("new particle alpha = %v, expected 1", p.Alpha)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{State(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.expected)
		}
	}
}
