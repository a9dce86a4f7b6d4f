package course

import (
	"context"
	"time"

	"github.com/vovakirdan/space-course/internal/core"
)

// Pilot chooses which directions to hold for the next frame.
type Pilot interface {
	Steer(r FrameResult) []core.Action
}

// FrameFunc receives every snapshot. Returning false stops the loop.
type FrameFunc func(r FrameResult) bool

// Loop drives the session from a wall-clock ticker until ctx is cancelled or
// onFrame returns false. The ticker is stopped on return, so tearing down the
// loop releases its per-frame timer.
func Loop(ctx context.Context, s *Session, interval time.Duration, onFrame FrameFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			r := s.OnFrame(msSince(start, t))
			if onFrame != nil && !onFrame(r) {
				return nil
			}
		}
	}
}

// Replay runs up to frames ticks on synthetic timestamps spaced frameMs apart,
// steering with pilot (nil flies straight). A session in the Menu is started
// first. Timestamps continue from the session's last frame, so replaying an
// already used session still advances time. Replay stops early on game over
// and returns the last snapshot.
func Replay(s *Session, frames int, frameMs float64, pilot Pilot) FrameResult {
	if s.State() == StateMenu {
		s.Start()
	}

	var base float64
	if last, ok := s.clock.Last(); ok {
		base = last + frameMs
	}

	r := s.Snapshot()
	for i := 0; i < frames; i++ {
		if pilot != nil {
			ApplyHeld(s, pilot.Steer(r))
		}
		r = s.OnFrame(base + float64(i)*frameMs)
		if r.State == StateGameOver {
			break
		}
	}
	return r
}

// ApplyHeld holds exactly the given directions and releases the rest.
func ApplyHeld(s *Session, held []core.Action) {
	want := make(map[core.Action]bool, len(held))
	for _, a := range held {
		want[a] = true
	}
	for _, a := range []core.Action{core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight} {
		s.SetAction(a, want[a])
	}
}

func msSince(start, t time.Time) float64 {
	return float64(t.Sub(start)) / float64(time.Millisecond)
}
