package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Pace tracks the scroll speed and the distance covered in a run.
// Speed grows linearly with elapsed run time; distance never decreases.
type Pace struct {
	Speed    float64
	Distance float64

	cfg config.PaceConfig
}

func newPace(cfg config.PaceConfig) Pace {
	return Pace{Speed: cfg.BaseSpeed, cfg: cfg}
}

// Advance accumulates distance for dt seconds, then ramps the speed.
// Returns the distance covered this step, which is also how far the world scrolls.
func (p *Pace) Advance(dt float64) float64 {
	step := p.Speed * dt
	p.Distance += step
	p.Speed += p.cfg.SpeedRamp * dt
	return step
}

// Score returns the whole distance units covered so far.
func (p *Pace) Score() int {
	return int(math.Floor(p.Distance))
}
