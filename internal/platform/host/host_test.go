package host

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func newHost() *Host {
	return New(runner.NewEngine(config.DefaultRunnerConfig(), runner.NewRand(1)))
}

func TestFrameStartsAndAdvances(t *testing.T) {
	h := newHost()
	t0 := time.Unix(50, 0)

	h.Frame(t0, Controls{Jump: true})
	if !h.Engine().Running() {
		t.Fatal("jump did not start the run")
	}

	h.Frame(t0.Add(20*time.Millisecond), Controls{})
	expected := config.DefaultRunnerConfig().Pace.BaseSpeed * 0.02
	if d := h.Engine().Distance(); math.Abs(d-expected) > 1e-9 {
		t.Errorf("Distance() = %v, expected %v", d, expected)
	}
}

func TestFramePauseResetsClock(t *testing.T) {
	h := newHost()
	t0 := time.Unix(50, 0)
	h.Frame(t0, Controls{Jump: true})
	h.Frame(t0.Add(20*time.Millisecond), Controls{})
	before := h.Engine().Distance()

	h.Frame(t0.Add(30*time.Millisecond), Controls{Pause: true})
	if !h.Paused() {
		t.Fatal("Paused() = false after pause")
	}
	h.Frame(t0.Add(time.Minute), Controls{Jump: true})
	if h.Engine().Distance() != before || !h.Engine().Player().Grounded {
		t.Error("engine changed while paused")
	}

	// Resuming frame carries no time
	h.Frame(t0.Add(2*time.Minute), Controls{Pause: true})
	if h.Paused() || h.Engine().Distance() != before {
		t.Errorf("Distance() = %v after resume, expected %v", h.Engine().Distance(), before)
	}
}

func TestFrameRestartOnlyAfterGameOver(t *testing.T) {
	h := newHost()
	now := time.Unix(50, 0)
	h.Frame(now, Controls{Jump: true})

	h.Frame(now.Add(20*time.Millisecond), Controls{Restart: true})
	if h.Engine().Distance() == 0 {
		t.Fatal("restart during a run reset the run")
	}

	var over bool
	for i := 0; i < 1000 && !over; i++ {
		now = now.Add(40 * time.Millisecond)
		over = h.Frame(now, Controls{}).GameOver
	}
	if !over {
		t.Fatal("run never ended without jumping")
	}

	// The new run is ticked in the same frame
	h.Frame(now.Add(40*time.Millisecond), Controls{Restart: true})
	cfg := config.DefaultRunnerConfig()
	if !h.Engine().Running() || h.Engine().Distance() > cfg.Pace.BaseSpeed*cfg.Clock.MaxDelta+1e-9 {
		t.Errorf("restart after game over: running=%v distance=%v", h.Engine().Running(), h.Engine().Distance())
	}
}

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		factor   float64
		spacing  float64
		expected float64
	}{
		{"start", 0, 0.5, 100, 0},
		{"within spacing", 100, 0.5, 100, 50},
		{"wraps", 500, 0.5, 100, 50},
		{"no spacing", 500, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParallaxOffset(tt.distance, tt.factor, tt.spacing); got != tt.expected {
				t.Errorf("ParallaxOffset() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
