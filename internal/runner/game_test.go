package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetConfig(config.DefaultRunnerConfig())
	g := New()
	rc := core.DefaultConfig()
	rc.Seed = 1
	g.Reset(rc)
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("runner")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "runner" || g.Title() != "Endless Runner" {
		t.Errorf("ID()/Title() = %q/%q", g.ID(), g.Title())
	}
}

func TestGameJumpStartsRun(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.NewInputFrame(), frame)
	if res.State.Running || res.State.GameOver {
		t.Errorf("State = %+v before input, expected idle", res.State)
	}

	res = g.Step(frameWith(core.ActionJump), frame)
	if !res.State.Running {
		t.Error("Running = false after jump, expected true")
	}
	if res.State.Score <= 0 {
		t.Errorf("Score = %d, expected progress on the first running tick", res.State.Score)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Step(frameWith(core.ActionJump), frame)

	placeObstacleOnPlayer(g.Engine())
	res := g.Step(core.NewInputFrame(), frame)
	if !res.GameOverNow || !res.State.GameOver {
		t.Fatalf("Step() = %+v, expected game over", res)
	}

	// Jump does not restart
	res = g.Step(frameWith(core.ActionJump), frame)
	if res.GameOverNow || !res.State.GameOver {
		t.Errorf("Step(jump) = %+v, expected still game over", res)
	}

	res = g.Step(frameWith(core.ActionRestart), frame)
	if !res.State.Running || res.State.GameOver {
		t.Errorf("Step(restart) = %+v, expected a new run", res)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "ENDLESS RUNNER") {
		t.Error("idle screen is missing the title box")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("screen is missing the ground line")
	}

	g.Step(frameWith(core.ActionJump), frame) // starts the run
	g.Step(frameWith(core.ActionJump), frame) // jumps
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "ENDLESS RUNNER") {
		t.Error("title box still drawn during a run")
	}
	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD row = %q, expected a score", screen.Row(0))
	}
	if !strings.ContainsRune(out, PlayerBody) {
		t.Error("screen is missing the player")
	}
	if !strings.ContainsRune(out, ParticleDense) {
		t.Error("screen is missing the jump particles")
	}

	placeObstacleOnPlayer(g.Engine())
	g.Step(core.NewInputFrame(), frame)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}
