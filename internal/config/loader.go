package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Sections missing from the document keep their default values.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate reports every physically meaningless value in the configuration.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.GroundY > 0, "field.ground_y must be positive, got %v", c.Field.GroundY)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity)
	check(c.Physics.CoyoteWindow >= 0, "physics.coyote_window must not be negative, got %v", c.Physics.CoyoteWindow)
	check(c.Physics.MaxTilt >= 0, "physics.max_tilt must not be negative, got %v", c.Physics.MaxTilt)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Height <= c.Field.GroundY, "player.height %v does not fit above ground_y %v", c.Player.Height, c.Field.GroundY)
	check(c.Pace.BaseSpeed > 0, "pace.base_speed must be positive, got %v", c.Pace.BaseSpeed)
	check(c.Pace.SpeedRamp >= 0, "pace.speed_ramp must not be negative, got %v", c.Pace.SpeedRamp)

	o := c.Obstacles
	check(o.MinWidth > 0 && o.MinWidth <= o.MaxWidth, "obstacles width range [%v, %v] is invalid", o.MinWidth, o.MaxWidth)
	check(o.MinHeight > 0 && o.MinHeight <= o.MaxHeight, "obstacles height range [%v, %v] is invalid", o.MinHeight, o.MaxHeight)
	check(o.MinGap > 0 && o.MinGap <= o.MaxGap, "obstacles gap range [%v, %v] is invalid", o.MinGap, o.MaxGap)
	check(o.GapSpeedFactor >= 0, "obstacles.gap_speed_factor must not be negative, got %v", o.GapSpeedFactor)
	check(o.MaxGapReduction >= 0, "obstacles.max_gap_reduction must not be negative, got %v", o.MaxGapReduction)
	check(o.GapFloor > 0, "obstacles.gap_floor must be positive, got %v", o.GapFloor)
	check(o.Lookahead > 0, "obstacles.lookahead must be positive, got %v", o.Lookahead)
	check(o.InitialOffset >= 0 && o.InitialOffset <= o.Lookahead,
		"obstacles.initial_offset must be within [0, lookahead], got %v", o.InitialOffset)

	p := c.Particles
	check(p.FrameRate > 0, "particles.frame_rate must be positive, got %v", p.FrameRate)
	check(p.Damping > 0 && p.Damping <= 1, "particles.damping must be within (0, 1], got %v", p.Damping)
	bursts := []struct {
		name string
		b    BurstConfig
	}{{"jump", p.Jump}, {"death", p.Death}}
	for _, burst := range bursts {
		name, b := burst.name, burst.b
		check(b.Count >= 0, "particles.%s.count must not be negative, got %d", name, b.Count)
		check(b.MinSpeed <= b.MaxSpeed, "particles.%s speed range [%v, %v] is invalid", name, b.MinSpeed, b.MaxSpeed)
		check(b.MinLife > 0 && b.MinLife <= b.MaxLife, "particles.%s life range [%v, %v] is invalid", name, b.MinLife, b.MaxLife)
		check(b.MinRadius > 0 && b.MinRadius <= b.MaxRadius, "particles.%s radius range [%v, %v] is invalid", name, b.MinRadius, b.MaxRadius)
		_, ok := core.ParseColor(b.Color)
		check(ok, "particles.%s.color %q is not a palette color", name, b.Color)
	}

	check(c.Clock.MaxDelta > 0, "clock.max_delta must be positive, got %v", c.Clock.MaxDelta)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
