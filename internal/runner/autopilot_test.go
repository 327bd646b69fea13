package runner

import "testing"

func pilotSnapshot(obstacles ...Obstacle) Snapshot {
	return Snapshot{
		Player:    PlayerView{X: 120, Y: 220, W: 36, H: 48, Grounded: true, Alive: true},
		Obstacles: obstacles,
		State:     StateRunning,
		Started:   true,
		Speed:     360,
	}
}

func TestAutopilotShouldJump(t *testing.T) {
	pilot := Autopilot{Lead: 0.2} // reacts 72 units ahead at speed 360

	airborne := pilotSnapshot(Obstacle{X: 200, W: 30})
	airborne.Player.Grounded = false

	idle := pilotSnapshot(Obstacle{X: 200, W: 30})
	idle.State = StateIdle

	tests := []struct {
		name     string
		snap     Snapshot
		expected bool
	}{
		{"obstacle within reach", pilotSnapshot(Obstacle{X: 200, W: 30}), true},
		{"obstacle too far", pilotSnapshot(Obstacle{X: 300, W: 30}), false},
		{"no obstacles", pilotSnapshot(), false},
		{"passed obstacle skipped", pilotSnapshot(Obstacle{X: 50, W: 30}, Obstacle{X: 200, W: 30}), true},
		{"only passed obstacles", pilotSnapshot(Obstacle{X: 50, W: 30}), false},
		{"airborne", airborne, false},
		{"idle", idle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pilot.ShouldJump(tt.snap); got != tt.expected {
				t.Errorf("ShouldJump() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() RunResult {
		return Simulate(newTestEngine(42), DefaultAutopilot(), frame, 3000)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Simulate() = %+v and %+v, expected identical runs for one seed", a, b)
	}
}

func TestSimulateReportsRun(t *testing.T) {
	e := newTestEngine(7)
	res := Simulate(e, DefaultAutopilot(), frame, 600)

	if res.Ticks < 1 || res.Ticks > 600 {
		t.Errorf("Ticks = %d, expected within [1, 600]", res.Ticks)
	}
	if res.Score <= 0 || res.Score != e.Score() {
		t.Errorf("Score = %d, expected positive and equal to engine score %d", res.Score, e.Score())
	}
	if res.Distance != e.Distance() || res.Speed != e.Speed() {
		t.Errorf("result = %+v, expected engine distance %v speed %v", res, e.Distance(), e.Speed())
	}
	if res.Crashed != e.GameOver() {
		t.Errorf("Crashed = %v, expected %v", res.Crashed, e.GameOver())
	}
	if !res.Crashed && res.Ticks != 600 {
		t.Errorf("Ticks = %d without a crash, expected the full budget", res.Ticks)
	}
}
