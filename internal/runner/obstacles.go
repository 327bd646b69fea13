package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a ground block the player must jump over.
type Obstacle struct {
	X float64 // Left edge
	Y float64 // Top edge; the base rests on the ground line
	W float64
	H float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Generator handles spawning, scrolling, and culling of obstacles.
// Obstacles are kept in spawn order, which is also left-to-right order,
// so only the last one is needed to schedule the next.
type Generator struct {
	cfg       config.ObstacleConfig
	field     config.FieldConfig
	rng       Rand
	obstacles []Obstacle
	nextGap   float64 // Gap after the last obstacle, rolled when it spawned
}

// NewGenerator creates an empty generator. Call Seed before the first frame.
func NewGenerator(field config.FieldConfig, cfg config.ObstacleConfig, rng Rand) *Generator {
	return &Generator{
		cfg:       cfg,
		field:     field,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Seed clears all obstacles and fills the lookahead buffer for the given speed.
func (g *Generator) Seed(speed float64) {
	g.obstacles = g.obstacles[:0]
	g.nextGap = 0
	g.Replenish(speed)
}

// Horizon returns the right-most x at which a new obstacle may be placed.
func (g *Generator) Horizon() float64 {
	return g.field.Width + g.cfg.Lookahead
}

// Scroll moves every obstacle left by dx.
func (g *Generator) Scroll(dx float64) {
	for i := range g.obstacles {
		g.obstacles[i].X -= dx
	}
}

// Cull removes obstacles whose right edge has passed the left cull bound.
// Returns the number of obstacles removed.
func (g *Generator) Cull() int {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Right() > g.field.LeftCull {
			kept = append(kept, o)
		}
	}
	removed := len(g.obstacles) - len(kept)
	g.obstacles = kept
	return removed
}

// Replenish spawns obstacles while the slot after the most recent one still
// lands within the lookahead horizon. Returns the number spawned.
func (g *Generator) Replenish(speed float64) int {
	spawned := 0
	for {
		x := g.nextSlot()
		if x > g.Horizon() {
			return spawned
		}
		g.spawn(x, speed)
		spawned++
	}
}

// nextSlot returns where the next obstacle would be placed.
func (g *Generator) nextSlot() float64 {
	if len(g.obstacles) == 0 {
		return g.field.Width + g.cfg.InitialOffset
	}
	last := g.obstacles[len(g.obstacles)-1]
	return last.Right() + g.nextGap
}

// spawn places a randomly sized obstacle at x and rolls the gap that follows it.
func (g *Generator) spawn(x, speed float64) {
	w := between(g.rng, g.cfg.MinWidth, g.cfg.MaxWidth)
	h := between(g.rng, g.cfg.MinHeight, g.cfg.MaxHeight)

	g.obstacles = append(g.obstacles, Obstacle{
		X: x,
		Y: g.field.GroundY - h,
		W: w,
		H: h,
	})
	g.nextGap = g.Gap(speed)
}

// Gap rolls a horizontal gap. The range shrinks with scroll speed, the
// reduction is capped, and the result never drops below the gap floor.
func (g *Generator) Gap(speed float64) float64 {
	reduction := min(speed*g.cfg.GapSpeedFactor, g.cfg.MaxGapReduction)
	gap := between(g.rng, g.cfg.MinGap, g.cfg.MaxGap) - reduction
	return max(gap, g.cfg.GapFloor)
}

// Obstacles returns the active obstacles in left-to-right order.
// The slice is owned by the generator and must not be modified.
func (g *Generator) Obstacles() []Obstacle {
	return g.obstacles
}

// Len returns the number of active obstacles.
func (g *Generator) Len() int {
	return len(g.obstacles)
}
