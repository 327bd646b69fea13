package runner

// Autopilot is a headless bot that requests a jump once the nearest obstacle
// ahead is within a speed-scaled reaction distance.
type Autopilot struct {
	// Lead is how many seconds before reaching an obstacle the bot jumps.
	Lead float64
}

// DefaultAutopilot returns a bot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lead: 0.2}
}

// ShouldJump decides from a snapshot whether to request a jump this frame.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if !s.Running() || !s.Player.Grounded {
		return false
	}
	front := s.Player.X + s.Player.W
	for _, o := range s.Obstacles {
		if o.Right() <= s.Player.X {
			continue // already passed
		}
		return o.X-front <= s.Speed*a.Lead
	}
	return false
}

// RunResult summarizes one headless run.
type RunResult struct {
	Score    int
	Distance float64
	Ticks    int
	Speed    float64 // Scroll speed when the run ended
	Crashed  bool    // False when the tick budget ran out first
}

// Simulate starts a run on the engine and drives it with the autopilot at a
// fixed delta until game over or maxTicks elapse.
func Simulate(e *Engine, pilot Autopilot, dt float64, maxTicks int) RunResult {
	e.Start()
	var res RunResult
	for res.Ticks < maxTicks {
		if pilot.ShouldJump(e.Snapshot()) {
			e.RequestJump()
		}
		tick := e.Tick(dt)
		res.Ticks++
		if tick.GameOver {
			res.Crashed = true
			break
		}
	}
	res.Score = e.Score()
	res.Distance = e.Distance()
	res.Speed = e.Speed()
	return res
}
