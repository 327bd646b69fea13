package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// midGenerator returns a generator whose every random draw is 0.5:
// width 35, height 46, gap 450 minus the speed reduction.
func midGenerator() (*Generator, config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewGenerator(cfg.Field, cfg.Obstacles, NewSequenceRand(0.5)), cfg
}

func TestGeneratorSeedFillsLookahead(t *testing.T) {
	g, cfg := midGenerator()
	g.Seed(360)

	// 960+200, then +35+360 each until past 960+1200
	expectedX := []float64{1160, 1555, 1950}
	obs := g.Obstacles()
	if len(obs) != len(expectedX) {
		t.Fatalf("Seed() produced %d obstacles, expected %d: %+v", len(obs), len(expectedX), obs)
	}
	for i, o := range obs {
		if o.X != expectedX[i] {
			t.Errorf("obstacle %d X = %v, expected %v", i, o.X, expectedX[i])
		}
		if o.W != 35 || o.H != 46 {
			t.Errorf("obstacle %d size = %vx%v, expected 35x46", i, o.W, o.H)
		}
		if o.Y+o.H != cfg.Field.GroundY {
			t.Errorf("obstacle %d base = %v, expected ground line %v", i, o.Y+o.H, cfg.Field.GroundY)
		}
	}
}

func TestGeneratorSeedReplacesField(t *testing.T) {
	g, _ := midGenerator()
	g.Seed(360)
	g.Scroll(500)
	g.Seed(360)

	if g.Obstacles()[0].X != 1160 {
		t.Errorf("re-seeded first obstacle X = %v, expected 1160", g.Obstacles()[0].X)
	}
}

func TestGeneratorScrollCullReplenish(t *testing.T) {
	g, cfg := midGenerator()
	g.Seed(360)

	// First obstacle ends exactly on the cull bound
	g.Scroll(1160 + 35)
	if removed := g.Cull(); removed != 1 {
		t.Fatalf("Cull() removed %d, expected 1", removed)
	}
	for _, o := range g.Obstacles() {
		if o.Right() <= cfg.Field.LeftCull {
			t.Errorf("obstacle %+v should have been culled", o)
		}
	}

	// Last is at 755; slots at 1150, 1545, 1940 fit before 2160
	if spawned := g.Replenish(360); spawned != 3 {
		t.Errorf("Replenish() spawned %d, expected 3", spawned)
	}
	if g.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", g.Len())
	}

	last := g.Obstacles()[g.Len()-1]
	if last.X != 1940 {
		t.Errorf("last obstacle X = %v, expected 1940", last.X)
	}
	if last.X-cfg.Field.Width > cfg.Obstacles.Lookahead {
		t.Errorf("last obstacle at %v is beyond the lookahead horizon", last.X)
	}
}

func TestGeneratorKeepsOrder(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g := NewGenerator(cfg.Field, cfg.Obstacles, NewRand(7))
	g.Seed(cfg.Pace.BaseSpeed)

	for range 500 {
		g.Scroll(12)
		g.Cull()
		g.Replenish(cfg.Pace.BaseSpeed)

		obs := g.Obstacles()
		if len(obs) == 0 {
			t.Fatal("generator ran empty")
		}
		for i := 1; i < len(obs); i++ {
			if obs[i].X < obs[i-1].Right() {
				t.Fatalf("obstacles out of order or overlapping: %+v then %+v", obs[i-1], obs[i])
			}
		}
	}
}

func TestGap(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		name     string
		draw     float64
		speed    float64
		expected float64
	}{
		{"standing still", 0.5, 0, 450},
		{"base speed", 0.5, 360, 360},
		{"reduction capped", 0.5, 10000, 270},
		{"floor enforced", 0, 10000, cfg.Obstacles.GapFloor},
		{"widest gap", 1, 0, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(cfg.Field, cfg.Obstacles, NewSequenceRand(tc.draw))
			if got := g.Gap(tc.speed); got != tc.expected {
				t.Errorf("Gap(%v) = %v, expected %v", tc.speed, got, tc.expected)
			}
		})
	}
}
