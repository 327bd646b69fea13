package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestPaceAdvance(t *testing.T) {
	p := newPace(config.PaceConfig{BaseSpeed: 360, SpeedRamp: 8})

	step := p.Advance(0.5)
	if step != 180 {
		t.Errorf("Advance(0.5) = %v, expected 180", step)
	}
	if p.Speed != 364 {
		t.Errorf("Speed = %v, expected 364", p.Speed)
	}

	// Distance uses the speed from before the ramp
	step = p.Advance(0.5)
	if step != 182 {
		t.Errorf("second Advance(0.5) = %v, expected 182", step)
	}
	if p.Score() != 362 {
		t.Errorf("Score() = %d, expected 362", p.Score())
	}
}

func TestPaceLinearRamp(t *testing.T) {
	p := newPace(config.PaceConfig{BaseSpeed: 100, SpeedRamp: 10})
	for range 600 {
		p.Advance(1.0 / 60)
	}
	if math.Abs(p.Speed-200) > 1e-6 {
		t.Errorf("Speed after 10s = %v, expected 200", p.Speed)
	}
}

func TestPaceZeroDelta(t *testing.T) {
	p := newPace(config.PaceConfig{BaseSpeed: 100, SpeedRamp: 10})
	if step := p.Advance(0); step != 0 {
		t.Errorf("Advance(0) = %v, expected 0", step)
	}
	if p.Speed != 100 || p.Distance != 0 {
		t.Errorf("pace changed on zero delta: %+v", p)
	}
}

func TestSequenceRand(t *testing.T) {
	r := NewSequenceRand(0.1, 0.9)
	expected := []float64{0.1, 0.9, 0.1}
	for i, want := range expected {
		if got := r.Float64(); got != want {
			t.Errorf("Float64() #%d = %v, expected %v", i, got, want)
		}
	}

	if got := NewSequenceRand().Float64(); got != 0 {
		t.Errorf("empty Float64() = %v, expected 0", got)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0, 10, 20, 10},
		{0.5, 10, 20, 15},
		{0.25, -4, 4, -2},
	}
	for _, tt := range tests {
		if got := between(NewSequenceRand(tt.v), tt.lo, tt.hi); got != tt.want {
			t.Errorf("between(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
