// Package registry lets games announce themselves from init() so hosts can
// list and instantiate them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a game's pure logic and the platform hosts.
// Implementations must not depend on any UI toolkit; hosts own input
// mapping, frame timing and presentation.
type Game interface {
	// ID returns the identifier used on the command line (e.g. "runner").
	ID() string

	// Title returns the display name (e.g. "Endless Runner").
	Title() string

	// Reset builds fresh game state from the runtime config.
	// Hosts call it once; restarts go through Step input.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation by dt
	// seconds, the clamped delta produced by the host's frame clock.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into dst at whatever size it has.
	Render(dst *core.Screen)

	// State returns score, running and game over flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // One line shown by `list`
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate ID, which are
// programming errors in a game's init().
func Register(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty game ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
