package course

import (
	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/core"
)

// RandomSource yields uniform samples in [0, 1).
// *math/rand.Rand satisfies it; tests inject scripted sources.
type RandomSource interface {
	Float64() float64
}

// SpawnController probabilistically introduces new obstacles.
type SpawnController struct {
	cfg   config.ObstacleConfig
	arena config.ArenaConfig
	rng   RandomSource
}

// NewSpawnController creates a spawn controller drawing from rng.
func NewSpawnController(cfg config.CourseConfig, rng RandomSource) *SpawnController {
	return &SpawnController{
		cfg:   cfg.Obstacles,
		arena: cfg.Arena,
		rng:   rng,
	}
}

// Maybe draws one sample and, if it falls under spawnChance*speedMultiplier,
// returns a new obstacle. At most one obstacle is produced per call.
func (s *SpawnController) Maybe(speedMultiplier float64) (Obstacle, bool) {
	if s.rng.Float64() >= s.cfg.SpawnChance*speedMultiplier {
		return Obstacle{}, false
	}
	return s.newObstacle(), true
}

// newObstacle builds an obstacle at the spawn depth.
// Draw order is fixed (kind, radius, spin, speed, x, y) so seeded runs replay exactly.
func (s *SpawnController) newObstacle() Obstacle {
	o := Obstacle{Kind: Asteroid}

	if s.rng.Float64() < s.cfg.PlanetChance {
		o.Kind = Planet
		o.Radius = s.uniform(s.cfg.PlanetRadius.Min, s.cfg.PlanetRadius.Max)
	} else {
		o.Radius = s.uniform(s.cfg.AsteroidRadius.Min, s.cfg.AsteroidRadius.Max)
		o.Spin = &core.Vec3{
			X: s.uniform(-s.cfg.Spin, s.cfg.Spin),
			Y: s.uniform(-s.cfg.Spin, s.cfg.Spin),
			Z: s.uniform(-s.cfg.Spin, s.cfg.Spin),
		}
	}

	o.ForwardSpeed = s.uniform(s.cfg.ForwardSpeed.Min, s.cfg.ForwardSpeed.Max)
	o.Position = core.Vec3{
		X: s.uniform(-s.arena.HalfWidth, s.arena.HalfWidth),
		// Spawns cover the same square as x, wider than the craft's vertical range
		Y: s.uniform(-s.arena.HalfWidth, s.arena.HalfWidth),
		Z: s.arena.SpawnDepth,
	}
	return o
}

func (s *SpawnController) uniform(lo, hi float64) float64 {
	return core.Lerp(lo, hi, s.rng.Float64())
}
