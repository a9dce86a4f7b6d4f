package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)

	want := DefaultCourseConfig()
	assert.InDelta(t, want.Timing.NominalFrameMs, cfg.Timing.NominalFrameMs, 1e-9)

	cfg.Timing.NominalFrameMs = want.Timing.NominalFrameMs
	assert.Equal(t, want, cfg)
}

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, DefaultCourseConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CourseConfig)
	}{
		{"zero half width", func(c *CourseConfig) { c.Arena.HalfWidth = 0 }},
		{"spawn behind craft", func(c *CourseConfig) { c.Arena.SpawnDepth = 0 }},
		{"cull in front of craft", func(c *CourseConfig) { c.Arena.CullDepth = -10 }},
		{"zero craft radius", func(c *CourseConfig) { c.Craft.Radius = 0 }},
		{"tilt decay above one", func(c *CourseConfig) { c.Craft.TiltDecay = 1.5 }},
		{"spawn chance above one", func(c *CourseConfig) { c.Obstacles.SpawnChance = 2 }},
		{"inverted asteroid radius", func(c *CourseConfig) { c.Obstacles.AsteroidRadius = Range{Min: 1, Max: 0.5} }},
		{"zero ramp while enabled", func(c *CourseConfig) { c.Difficulty.RampSeconds = 0 }},
		{"max frame below nominal", func(c *CourseConfig) { c.Timing.MaxFrameMs = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCourseConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error should wrap ErrInvalidConfig: %v", err)
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("craft:\n  move_speed: 4\n"))
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Craft.MoveSpeed)
	// Untouched fields keep their defaults
	assert.Equal(t, 0.3, cfg.Craft.Radius)
	assert.Equal(t, 5.0, cfg.Arena.HalfWidth)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("craft: [unterminated"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  ramp_seconds: 30\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Difficulty.RampSeconds)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("craft:\n  radius: -1\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		_, err := ParsePreset(name)
		assert.NoError(t, err, name)
	}
	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultCourseConfig()
	ApplyPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 40.0, cfg.Difficulty.RampSeconds)

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	before := cfg
	ApplyPreset(&cfg, "")
	assert.Equal(t, before, cfg, "empty preset should leave config untouched")
}
