package course

import "github.com/vovakirdan/space-course/internal/core"

// ObstacleKind distinguishes the obstacle variants.
type ObstacleKind int

const (
	Asteroid ObstacleKind = iota
	Planet
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case Asteroid:
		return "Asteroid"
	case Planet:
		return "Planet"
	default:
		return "Unknown"
	}
}

// Craft is the player entity.
type Craft struct {
	Position core.Vec3
	Tilt     float64 // Roll in radians, positive when steering left
	Radius   float64 // Collision radius
}

// Sphere returns the craft's bounding sphere.
func (c Craft) Sphere() core.Sphere {
	return core.Sphere{Center: c.Position, Radius: c.Radius}
}

// Obstacle is a transient asteroid or planet travelling toward the craft.
type Obstacle struct {
	ID           uint64
	Kind         ObstacleKind
	Position     core.Vec3
	Rotation     core.Vec3  // Accumulated tumble, rendering only
	Radius       float64    // Collision and visual size
	ForwardSpeed float64    // Drawn once at spawn, difficulty applied per step
	Spin         *core.Vec3 // Per-frame rotation delta; nil for planets
}

// Sphere returns the obstacle's bounding sphere.
func (o Obstacle) Sphere() core.Sphere {
	return core.Sphere{Center: o.Position, Radius: o.Radius}
}

// clone returns a copy that shares no memory with o.
func (o Obstacle) clone() Obstacle {
	if o.Spin != nil {
		spin := *o.Spin
		o.Spin = &spin
	}
	return o
}

// EntityStore owns the craft and every live obstacle.
// Obstacles are kept in insertion order.
type EntityStore struct {
	craft     Craft
	spawnPose core.Vec3
	obstacles []Obstacle
	nextID    uint64
}

// NewEntityStore creates a store with the craft at its spawn pose.
func NewEntityStore(spawnPose core.Vec3, craftRadius float64) *EntityStore {
	s := &EntityStore{
		craft:     Craft{Radius: craftRadius},
		spawnPose: spawnPose,
		obstacles: make([]Obstacle, 0, 32),
	}
	s.ResetCraft()
	return s
}

// Craft returns the craft for in-place updates.
func (s *EntityStore) Craft() *Craft {
	return &s.craft
}

// ResetCraft puts the craft back at its spawn pose.
func (s *EntityStore) ResetCraft() {
	s.craft.Position = s.spawnPose
	s.craft.Tilt = 0
}

// Obstacles returns the live obstacles in insertion order.
// The slice is owned by the store and is only valid until the next mutation.
func (s *EntityStore) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of live obstacles.
func (s *EntityStore) Len() int {
	return len(s.obstacles)
}

// Spawn adds an obstacle, assigns it a fresh ID and returns that ID.
// IDs start at 1 and are never reused by a store.
func (s *EntityStore) Spawn(o Obstacle) uint64 {
	s.nextID++
	o.ID = s.nextID
	s.obstacles = append(s.obstacles, o)
	return o.ID
}

// Remove deletes the obstacle with the given ID. Returns false if absent.
func (s *EntityStore) Remove(id uint64) bool {
	for i := range s.obstacles {
		if s.obstacles[i].ID == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveWhere deletes every obstacle matching pred, preserving the order of
// the rest, and returns how many were removed.
func (s *EntityStore) RemoveWhere(pred func(*Obstacle) bool) int {
	kept := s.obstacles[:0]
	for i := range s.obstacles {
		if !pred(&s.obstacles[i]) {
			kept = append(kept, s.obstacles[i])
		}
	}
	removed := len(s.obstacles) - len(kept)
	// Drop references held by the tail so spin pointers can be collected
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
	return removed
}

// Clear removes every obstacle.
func (s *EntityStore) Clear() {
	clear(s.obstacles)
	s.obstacles = s.obstacles[:0]
}
