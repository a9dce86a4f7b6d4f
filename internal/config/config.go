// Package config provides YAML-based course configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// CourseConfig contains all tunables of the simulation.
type CourseConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Craft      CraftConfig      `yaml:"craft"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
}

// ArenaConfig defines the playfield geometry.
type ArenaConfig struct {
	HalfWidth  float64 `yaml:"half_width"`  // Craft x is clamped to [-HalfWidth, HalfWidth]
	HalfHeight float64 `yaml:"half_height"` // Craft y is clamped to [-HalfHeight, HalfHeight]
	CraftDepth float64 `yaml:"craft_depth"` // Fixed z of the craft
	SpawnDepth float64 `yaml:"spawn_depth"` // z where obstacles appear
	CullDepth  float64 `yaml:"cull_depth"`  // Obstacles past this z are removed
}

// CraftConfig defines the player craft.
type CraftConfig struct {
	Radius    float64 `yaml:"radius"`
	MoveSpeed float64 `yaml:"move_speed"` // Units per second per held direction
	TiltStep  float64 `yaml:"tilt_step"`  // Radians per frame while steering sideways
	MaxTilt   float64 `yaml:"max_tilt"`
	TiltDecay float64 `yaml:"tilt_decay"` // Per-frame multiplier with no lateral input
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ObstacleConfig defines spawn distributions and obstacle motion.
type ObstacleConfig struct {
	SpawnChance    float64 `yaml:"spawn_chance"`  // Per-frame spawn probability at multiplier 1
	PlanetChance   float64 `yaml:"planet_chance"` // Probability a spawn is a planet
	PlanetRadius   Range   `yaml:"planet_radius"`
	AsteroidRadius Range   `yaml:"asteroid_radius"`
	ForwardSpeed   Range   `yaml:"forward_speed"`
	Spin           float64 `yaml:"spin"`          // Asteroid spin per axis is drawn from [-Spin, Spin]
	AdvanceScale   float64 `yaml:"advance_scale"` // Depth units per millisecond per unit of speed
}

// DifficultyConfig defines the time-based difficulty ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	RampSeconds  float64 `yaml:"ramp_seconds"`  // Running seconds per +1.0 of speed multiplier
	LevelSeconds float64 `yaml:"level_seconds"` // Running seconds per displayed level
}

// TimingConfig defines frame delta handling.
type TimingConfig struct {
	NominalFrameMs float64 `yaml:"nominal_frame_ms"` // Delta used for the very first frame
	MaxFrameMs     float64 `yaml:"max_frame_ms"`     // Larger gaps are clamped to this
}

// Validate checks that the configuration can drive a simulation.
func (c CourseConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Arena.HalfWidth > 0, "arena.half_width must be positive"},
		{c.Arena.HalfHeight > 0, "arena.half_height must be positive"},
		{c.Arena.SpawnDepth < c.Arena.CraftDepth, "arena.spawn_depth must be in front of craft_depth"},
		{c.Arena.CullDepth > c.Arena.CraftDepth, "arena.cull_depth must be behind craft_depth"},
		{c.Craft.Radius > 0, "craft.radius must be positive"},
		{c.Craft.MoveSpeed >= 0, "craft.move_speed must not be negative"},
		{c.Craft.MaxTilt >= 0, "craft.max_tilt must not be negative"},
		{c.Craft.TiltDecay >= 0 && c.Craft.TiltDecay <= 1, "craft.tilt_decay must be within [0, 1]"},
		{c.Obstacles.SpawnChance >= 0 && c.Obstacles.SpawnChance <= 1, "obstacles.spawn_chance must be within [0, 1]"},
		{c.Obstacles.PlanetChance >= 0 && c.Obstacles.PlanetChance <= 1, "obstacles.planet_chance must be within [0, 1]"},
		{validRange(c.Obstacles.PlanetRadius) && c.Obstacles.PlanetRadius.Min > 0, "obstacles.planet_radius must be a positive range"},
		{validRange(c.Obstacles.AsteroidRadius) && c.Obstacles.AsteroidRadius.Min > 0, "obstacles.asteroid_radius must be a positive range"},
		{validRange(c.Obstacles.ForwardSpeed) && c.Obstacles.ForwardSpeed.Min >= 0, "obstacles.forward_speed must be a non-negative range"},
		{c.Obstacles.AdvanceScale > 0, "obstacles.advance_scale must be positive"},
		{!c.Difficulty.Enabled || c.Difficulty.RampSeconds > 0, "difficulty.ramp_seconds must be positive when enabled"},
		{c.Difficulty.LevelSeconds > 0, "difficulty.level_seconds must be positive"},
		{c.Timing.NominalFrameMs > 0, "timing.nominal_frame_ms must be positive"},
		{c.Timing.MaxFrameMs >= c.Timing.NominalFrameMs, "timing.max_frame_ms must be at least nominal_frame_ms"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

func validRange(r Range) bool {
	return r.Min <= r.Max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// RampForPreset returns the ramp length in seconds for a difficulty preset.
func RampForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 90
	case DifficultyHard:
		return 40
	default:
		return 60
	}
}

// ParsePreset validates a preset name. The empty string means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CourseConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampSeconds = RampForPreset(preset)
	}
}
