package core

// RuntimeConfig contains configuration passed from the CLI to the platform.
type RuntimeConfig struct {
	ScreenW       int // Screen width in characters
	ScreenH       int // Screen height in characters
	TickRate      int // Frames per second requested from the scheduler (default 60)
	HoldMs        int // How long a repeated key press keeps a direction held
	RepeatDelayMs int // Hold after the first press, covering the terminal's key-repeat delay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		HoldMs:        150,
		RepeatDelayMs: 500,
	}
}
