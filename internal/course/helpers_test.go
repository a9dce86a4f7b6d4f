package course

import (
	"testing"

	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/core"
)

// scriptedSource replays fixed samples in order, cycling when exhausted.
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// neverSpawn returns a source whose samples never pass the spawn check.
func neverSpawn() RandomSource {
	return &scriptedSource{vals: []float64{0.999999}}
}

const frameMs = 1000.0 / 60.0

// newQuietSession builds a session with spawning disabled so tests control every obstacle.
func newQuietSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultCourseConfig(), WithRandomSource(neverSpawn()))
}

// runFrames feeds n frames starting at *ts and advances it.
func runFrames(s *Session, ts *float64, n int) FrameResult {
	var r FrameResult
	for i := 0; i < n; i++ {
		r = s.OnFrame(*ts)
		*ts += frameMs
	}
	return r
}

// parked returns an obstacle that never moves.
func parked(x, y, z, radius float64) Obstacle {
	return Obstacle{
		Kind:     Planet,
		Position: core.Vec3{X: x, Y: y, Z: z},
		Radius:   radius,
	}
}
