// Package config provides YAML-based runner configuration loading,
// validation and difficulty presets.
package config

// RunnerConfig contains every tunable constant of the runner simulation.
// All distances are in world units (pixels of the reference field), all
// times in seconds unless a field says otherwise.
type RunnerConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Pace      PaceConfig     `yaml:"pace"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Particles ParticleConfig `yaml:"particles"`
	Clock     ClockConfig    `yaml:"clock"`
}

// FieldConfig describes the visible play field.
type FieldConfig struct {
	Width    float64 `yaml:"width"`     // Right boundary of the visible field
	Height   float64 `yaml:"height"`    // Total field height (renderers only)
	GroundY  float64 `yaml:"ground_y"`  // Ground line; obstacles rest on it
	LeftCull float64 `yaml:"left_cull"` // Obstacles with right edge <= this are removed
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration (units/s²)
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set by a jump (negative = up)
	CoyoteWindow float64 `yaml:"coyote_window"` // Distance above ground where a falling player may still jump
	TiltFactor   float64 `yaml:"tilt_factor"`   // Radians of tilt per unit of vertical velocity
	MaxTilt      float64 `yaml:"max_tilt"`      // Absolute tilt limit in radians
}

// PlayerConfig defines the player's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaceConfig defines the scroll speed and its single linear ramp.
type PaceConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // Scroll speed at run start (units/s)
	SpeedRamp float64 `yaml:"speed_ramp"` // Speed increase per second (units/s²)
}

// ObstacleConfig defines obstacle sizes and generator pacing.
type ObstacleConfig struct {
	MinWidth        float64 `yaml:"min_width"`
	MaxWidth        float64 `yaml:"max_width"`
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
	MinGap          float64 `yaml:"min_gap"`
	MaxGap          float64 `yaml:"max_gap"`
	GapSpeedFactor  float64 `yaml:"gap_speed_factor"`  // Gap reduction per unit of scroll speed
	MaxGapReduction float64 `yaml:"max_gap_reduction"` // Cap on the speed-based reduction
	GapFloor        float64 `yaml:"gap_floor"`         // Smallest gap ever generated
	Lookahead       float64 `yaml:"lookahead"`         // Horizon past the field's right edge
	InitialOffset   float64 `yaml:"initial_offset"`    // First obstacle position past the right edge
}

// ParticleConfig defines the cosmetic particle kinematics and bursts.
type ParticleConfig struct {
	Gravity   float64     `yaml:"gravity"`    // Downward acceleration (units/s²)
	Damping   float64     `yaml:"damping"`    // Horizontal velocity factor per reference frame
	FrameRate float64     `yaml:"frame_rate"` // Reference frames per second; lifetimes are in frames
	Jump      BurstConfig `yaml:"jump"`
	Death     BurstConfig `yaml:"death"`
}

// BurstConfig describes one particle emission pattern.
type BurstConfig struct {
	Count     int     `yaml:"count"`
	Angle     float64 `yaml:"angle"`  // Center direction in radians (screen space, -π/2 = up)
	Spread    float64 `yaml:"spread"` // Full angular width in radians
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinLife   float64 `yaml:"min_life"` // Lifetime in reference frames
	MaxLife   float64 `yaml:"max_life"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Color     string  `yaml:"color"`
}

// ClockConfig defines frame delta handling.
type ClockConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Upper bound for a single frame delta (seconds)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
