package config

import "fmt"

// presetScale holds multipliers applied to the pace section by a preset.
type presetScale struct {
	baseSpeed float64
	speedRamp float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {baseSpeed: 0.85, speedRamp: 0.5},
	DifficultyNormal: {baseSpeed: 1.0, speedRamp: 1.0},
	DifficultyHard:   {baseSpeed: 1.25, speedRamp: 1.5},
	DifficultyFixed:  {baseSpeed: 1.0, speedRamp: 0},
}

// ParsePreset converts a CLI value into a DifficultyPreset.
// An empty string means "no preset" and is returned as-is.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	preset := DifficultyPreset(name)
	if _, ok := presetScales[preset]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return preset, nil
}

// ApplyPreset scales the linear speed ramp according to a difficulty preset.
// The fixed preset keeps the base speed and disables the ramp.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Pace.BaseSpeed *= scale.baseSpeed
	cfg.Pace.SpeedRamp *= scale.speedRamp
}
