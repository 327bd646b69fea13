package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:    960,
			Height:   320,
			GroundY:  268,
			LeftCull: 0,
		},
		Physics: PhysicsConfig{
			Gravity:      2000,
			JumpVelocity: -680,
			CoyoteWindow: 10,
			TiltFactor:   0.0012,
			MaxTilt:      0.5,
		},
		Player: PlayerConfig{
			X:      120,
			Width:  36,
			Height: 48,
		},
		Pace: PaceConfig{
			BaseSpeed: 360,
			SpeedRamp: 8,
		},
		Obstacles: ObstacleConfig{
			MinWidth:        22,
			MaxWidth:        48,
			MinHeight:       28,
			MaxHeight:       64,
			MinGap:          300,
			MaxGap:          600,
			GapSpeedFactor:  0.25,
			MaxGapReduction: 180,
			GapFloor:        240,
			Lookahead:       1200,
			InitialOffset:   200,
		},
		Particles: ParticleConfig{
			Gravity:   900,
			Damping:   0.98,
			FrameRate: 60,
			Jump: BurstConfig{
				Count:     8,
				Angle:     -1.5708,
				Spread:    1.4,
				MinSpeed:  60,
				MaxSpeed:  180,
				MinLife:   18,
				MaxLife:   30,
				MinRadius: 1.5,
				MaxRadius: 3,
				Color:     "orange",
			},
			Death: BurstConfig{
				Count:     36,
				Angle:     0,
				Spread:    6.2832,
				MinSpeed:  80,
				MaxSpeed:  380,
				MinLife:   40,
				MaxLife:   70,
				MinRadius: 2,
				MaxRadius: 5,
				Color:     "bright_cyan",
			},
		},
		Clock: ClockConfig{
			MaxDelta: 0.04,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
