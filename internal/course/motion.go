package course

import (
	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/core"
)

// MotionSystem advances the craft from held input and moves obstacles
// toward it. Motion is a single continuous model: distance = speed * time.
type MotionSystem struct {
	arena     config.ArenaConfig
	craft     config.CraftConfig
	obstacles config.ObstacleConfig
}

// NewMotionSystem creates a motion system from the course configuration.
func NewMotionSystem(cfg config.CourseConfig) MotionSystem {
	return MotionSystem{
		arena:     cfg.Arena,
		craft:     cfg.Craft,
		obstacles: cfg.Obstacles,
	}
}

// MoveCraft applies held directions for deltaMs and updates tilt.
// Difficulty never affects the craft. The bounds clamp runs every call,
// whether or not anything moved.
func (m MotionSystem) MoveCraft(c *Craft, in core.InputState, deltaMs float64) {
	step := m.craft.MoveSpeed * deltaMs / 1000

	if in.Held(core.ActionMoveUp) {
		c.Position.Y += step
	}
	if in.Held(core.ActionMoveDown) {
		c.Position.Y -= step
	}
	if in.Held(core.ActionMoveLeft) {
		c.Position.X -= step
	}
	if in.Held(core.ActionMoveRight) {
		c.Position.X += step
	}

	dx, _ := in.Axis()
	switch {
	case dx < 0:
		c.Tilt += m.craft.TiltStep
	case dx > 0:
		c.Tilt -= m.craft.TiltStep
	default:
		c.Tilt *= m.craft.TiltDecay
	}
	c.Tilt = core.ClampF(c.Tilt, -m.craft.MaxTilt, m.craft.MaxTilt)

	c.Position.X = core.ClampF(c.Position.X, -m.arena.HalfWidth, m.arena.HalfWidth)
	c.Position.Y = core.ClampF(c.Position.Y, -m.arena.HalfHeight, m.arena.HalfHeight)
}

// MoveObstacles advances every obstacle toward the craft, tumbles asteroids,
// then removes obstacles that have passed the cull depth.
// Returns the number of obstacles removed.
func (m MotionSystem) MoveObstacles(store *EntityStore, speedMultiplier, deltaMs float64) int {
	obstacles := store.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		o.Position.Z += o.ForwardSpeed * speedMultiplier * m.obstacles.AdvanceScale * deltaMs
		if o.Spin != nil {
			o.Rotation = o.Rotation.Add(*o.Spin)
		}
	}

	cull := m.arena.CullDepth
	return store.RemoveWhere(func(o *Obstacle) bool {
		return o.Position.Z > cull
	})
}
