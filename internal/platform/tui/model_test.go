package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func newTestModel(t *testing.T, runs *RunLog) (Model, *runner.Game) {
	t.Helper()
	runner.SetConfig(config.DefaultRunnerConfig())

	game, err := CreateGame("runner", config.DifficultyNormal)
	if err != nil {
		t.Fatalf("CreateGame() error = %v", err)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(game, cfg, runs)
	m.Init()

	rg, ok := game.(*runner.Game)
	if !ok {
		t.Fatalf("CreateGame() returned %T, expected *runner.Game", game)
	}
	return m, rg
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelStartsRunFromKey(t *testing.T) {
	m, game := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, TickMsg(t0))
	if !game.Engine().Running() {
		t.Fatal("run did not start after space")
	}
	// First frame after start carries no time
	if game.Engine().Distance() != 0 {
		t.Errorf("Distance() = %v, expected 0 on the first frame", game.Engine().Distance())
	}

	send(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if d := game.Engine().Distance(); d <= 0 {
		t.Errorf("Distance() = %v, expected progress after a frame", d)
	}
	if game.Preset() != config.DifficultyNormal {
		t.Errorf("Preset() = %q, expected normal", game.Preset())
	}
}

func TestModelPauseDiscardsWallTime(t *testing.T) {
	m, game := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(t, m, TickMsg(t0))
	m = send(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	before := game.Engine().Distance()

	m = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("Paused() = false after p")
	}
	m = send(t, m, TickMsg(t0.Add(5*time.Second)))
	if game.Engine().Distance() != before {
		t.Error("game advanced while paused")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg(t0.Add(10*time.Second)))
	if game.Engine().Distance() != before {
		t.Errorf("Distance() = %v after resume, expected %v", game.Engine().Distance(), before)
	}

	m = send(t, m, TickMsg(t0.Add(10*time.Second+20*time.Millisecond)))
	if game.Engine().Distance() <= before {
		t.Error("game did not advance after resume")
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("View() is missing the HUD")
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	runs := NewRunLog(10)
	m, game := newTestModel(t, runs)
	now := time.Unix(1000, 0)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	// Never jumping guarantees a collision with the first obstacle
	for i := 0; i < 1000 && runs.Len() == 0; i++ {
		m = send(t, m, TickMsg(now))
		now = now.Add(40 * time.Millisecond)
	}

	if runs.Len() != 1 {
		t.Fatalf("runs recorded = %d, expected 1", runs.Len())
	}
	rec := runs.Ranked()[0]
	if rec.Game != "runner" || rec.Preset != "normal" {
		t.Errorf("record = %+v, expected runner/normal", rec)
	}
	if rec.Score != game.Engine().Score() || rec.Score <= 0 {
		t.Errorf("record score = %d, expected %d", rec.Score, game.Engine().Score())
	}
	if rec.Duration <= 0 {
		t.Errorf("record duration = %v, expected positive", rec.Duration)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() is missing the game over box")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}
