package course

import "github.com/vovakirdan/space-course/internal/config"

// Clock turns the scheduler's monotonically increasing timestamps into
// per-frame deltas and accumulates running time.
type Clock struct {
	nominalMs float64
	maxMs     float64

	lastMs  float64
	hasLast bool
	elapsed float64 // seconds, running time only
}

// NewClock creates a clock with the given frame timing.
func NewClock(t config.TimingConfig) *Clock {
	return &Clock{
		nominalMs: t.NominalFrameMs,
		maxMs:     t.MaxFrameMs,
	}
}

// Tick records a frame timestamp in milliseconds and returns the delta since
// the previous one. The first tick has no predecessor and yields the nominal
// frame duration. Timestamps that go backwards yield 0 and are ignored.
// Gaps longer than the configured maximum are clamped.
func (c *Clock) Tick(timestampMs float64) float64 {
	if !c.hasLast {
		c.hasLast = true
		c.lastMs = timestampMs
		return c.nominalMs
	}

	delta := timestampMs - c.lastMs
	if delta < 0 {
		return 0
	}
	c.lastMs = timestampMs

	if delta > c.maxMs {
		delta = c.maxMs
	}
	return delta
}

// Last returns the most recent accepted timestamp and whether the clock has
// been ticked at all.
func (c *Clock) Last() (float64, bool) {
	return c.lastMs, c.hasLast
}

// Advance adds a frame delta (ms) to the running time.
func (c *Clock) Advance(deltaMs float64) {
	c.elapsed += deltaMs / 1000
}

// Elapsed returns accumulated running time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// ResetElapsed zeroes running time. The last timestamp is kept so the next
// tick still produces an ordinary frame delta.
func (c *Clock) ResetElapsed() {
	c.elapsed = 0
}
