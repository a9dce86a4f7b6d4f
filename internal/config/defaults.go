package config

import (
	_ "embed"
)

//go:embed defaults/course.yaml
var defaultCourseYAML []byte

// DefaultCourseConfig returns the built-in configuration.
// It mirrors defaults/course.yaml and is used when the embedded file cannot be parsed.
func DefaultCourseConfig() CourseConfig {
	return CourseConfig{
		Arena: ArenaConfig{
			HalfWidth:  5,
			HalfHeight: 3,
			CraftDepth: -2,
			SpawnDepth: -50,
			CullDepth:  10,
		},
		Craft: CraftConfig{
			Radius:    0.3,
			MoveSpeed: 10,
			TiltStep:  0.1,
			MaxTilt:   0.5,
			TiltDecay: 0.9,
		},
		Obstacles: ObstacleConfig{
			SpawnChance:    0.01,
			PlanetChance:   0.2,
			PlanetRadius:   Range{Min: 0.5, Max: 2.0},
			AsteroidRadius: Range{Min: 0.2, Max: 0.7},
			ForwardSpeed:   Range{Min: 0.3, Max: 0.5},
			Spin:           0.01,
			AdvanceScale:   0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			RampSeconds:  60,
			LevelSeconds: 30,
		},
		Timing: TimingConfig{
			NominalFrameMs: 1000.0 / 60.0,
			MaxFrameMs:     250,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCourseYAML
}
