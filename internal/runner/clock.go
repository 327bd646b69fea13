package runner

import (
	"math"
	"time"
)

// ClampDelta bounds a frame delta to [0, maxDelta].
// Negative and NaN deltas from a misbehaving clock become zero.
func ClampDelta(dt, maxDelta float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// FrameDelta converts two frame timestamps into a clamped delta in seconds.
func FrameDelta(prev, now time.Time, maxDelta float64) float64 {
	return ClampDelta(now.Sub(prev).Seconds(), maxDelta)
}

// Clock turns the timestamps handed out by a host frame scheduler into
// simulation deltas. The first frame after construction or Reset yields zero.
type Clock struct {
	maxDelta float64
	last     time.Time
	started  bool
}

// NewClock creates a clock whose deltas never exceed maxDelta seconds.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Step records a frame timestamp and returns the delta since the previous one.
func (c *Clock) Step(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := FrameDelta(c.last, now, c.maxDelta)
	c.last = now
	return dt
}

// Reset forgets the previous timestamp, e.g. after the host loop was paused.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
