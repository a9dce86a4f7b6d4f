// Package autopilot provides a deterministic pilot for headless runs and the
// demo mode of the terminal UI.
package autopilot

import (
	"math"

	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
)

const (
	defaultLookahead = 25.0 // Depth window in front of the craft that is scanned
	defaultMargin    = 0.6  // Extra clearance added to the sum of radii
	centreDeadzone   = 0.2
	wallSlack        = 0.05
)

// Pilot dodges the nearest threatening obstacle, otherwise drifts back to the
// centre of the arena. It keeps no state between frames.
type Pilot struct {
	arena     config.ArenaConfig
	lookahead float64
	margin    float64
}

// New creates a pilot for the given course geometry.
func New(cfg config.CourseConfig) *Pilot {
	return &Pilot{
		arena:     cfg.Arena,
		lookahead: defaultLookahead,
		margin:    defaultMargin,
	}
}

// Steer returns the directions to hold for the next frame.
func (p *Pilot) Steer(r course.FrameResult) []core.Action {
	if r.State != course.StateRunning {
		return nil
	}

	threat, ok := p.nearestThreat(r)
	if !ok {
		return p.recentre(r.Craft.Position)
	}
	return p.evade(r.Craft.Position, threat.Position)
}

// nearestThreat returns the closest obstacle in front of the craft whose disc
// overlaps the craft's disc, inflated by the margin.
func (p *Pilot) nearestThreat(r course.FrameResult) (course.Obstacle, bool) {
	c := r.Craft
	var best course.Obstacle
	found := false

	for _, o := range r.Obstacles {
		if o.Position.Z > c.Position.Z+o.Radius || o.Position.Z < c.Position.Z-p.lookahead {
			continue
		}
		reach := o.Radius + c.Radius + p.margin
		if o.Position.Sub(c.Position).XY().Len() >= reach {
			continue
		}
		if !found || o.Position.Z > best.Position.Z {
			best = o
			found = true
		}
	}
	return best, found
}

func (p *Pilot) evade(craft, obstacle core.Vec3) []core.Action {
	dx := craft.X - obstacle.X
	dy := craft.Y - obstacle.Y

	sx := side(dx, craft.X)
	sy := side(dy, craft.Y)

	blockedX := p.atWall(craft.X, p.arena.HalfWidth, sx)
	blockedY := p.atWall(craft.Y, p.arena.HalfHeight, sy)

	var out []core.Action
	switch {
	case blockedX && blockedY:
		// Cornered: cut back across the obstacle horizontally
		out = append(out, horizontal(-sx))
	case blockedX:
		out = append(out, vertical(sy))
	case blockedY:
		out = append(out, horizontal(sx))
	default:
		// Move along the axis that already has the larger separation,
		// and on both when they are comparable.
		ax, ay := math.Abs(dx), math.Abs(dy)
		if ax >= ay*0.5 {
			out = append(out, horizontal(sx))
		}
		if ay >= ax*0.5 {
			out = append(out, vertical(sy))
		}
	}
	return out
}

func (p *Pilot) recentre(pos core.Vec3) []core.Action {
	var out []core.Action
	switch {
	case pos.X > centreDeadzone:
		out = append(out, core.ActionMoveLeft)
	case pos.X < -centreDeadzone:
		out = append(out, core.ActionMoveRight)
	}
	switch {
	case pos.Y > centreDeadzone:
		out = append(out, core.ActionMoveDown)
	case pos.Y < -centreDeadzone:
		out = append(out, core.ActionMoveUp)
	}
	return out
}

func (p *Pilot) atWall(v, half, sign float64) bool {
	return v*sign >= half-wallSlack
}

// side picks +1 or -1 for moving away along one axis. With no separation it
// heads toward the side with more room.
func side(d, pos float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	case pos <= 0:
		return 1
	default:
		return -1
	}
}

func horizontal(sign float64) core.Action {
	if sign > 0 {
		return core.ActionMoveRight
	}
	return core.ActionMoveLeft
}

func vertical(sign float64) core.Action {
	if sign > 0 {
		return core.ActionMoveUp
	}
	return core.ActionMoveDown
}
