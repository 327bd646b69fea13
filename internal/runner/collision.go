package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// FirstCollision returns the index of the first obstacle overlapping the
// player's rectangle. Obstacles that merely touch an edge do not collide.
func FirstCollision(player core.Rect, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if player.Intersects(o.Rect()) {
			return i, true
		}
	}
	return -1, false
}
