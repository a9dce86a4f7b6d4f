package config

import "math"

// DifficultyModel derives the speed multiplier and display level from
// accumulated running time. It holds no state of its own: the caller owns
// the clock and must only feed it time spent in the running state.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a new difficulty model.
func NewDifficultyModel(cfg DifficultyConfig) DifficultyModel {
	return DifficultyModel{cfg: cfg}
}

// IsEnabled returns whether the ramp is active.
func (d DifficultyModel) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampSeconds > 0
}

// SpeedMultiplier returns 1 + elapsed/RampSeconds.
// With the default ramp this adds a full unit every 60 seconds.
// Negative elapsed values are treated as zero.
func (d DifficultyModel) SpeedMultiplier(elapsedSeconds float64) float64 {
	if !d.IsEnabled() {
		return 1
	}
	return 1 + math.Max(elapsedSeconds, 0)/d.cfg.RampSeconds
}

// Level returns floor(elapsed/LevelSeconds)+1, used for display only.
func (d DifficultyModel) Level(elapsedSeconds float64) int {
	step := d.cfg.LevelSeconds
	if step <= 0 {
		step = 30 // Prevent division by zero
	}
	return int(math.Floor(math.Max(elapsedSeconds, 0)/step)) + 1
}
