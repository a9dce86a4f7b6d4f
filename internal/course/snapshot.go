package course

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// FrameResult is a snapshot of the simulation handed to renderers after each frame.
// It is a deep copy: nothing a renderer does to it reaches the session.
type FrameResult struct {
	Frame           uint64 // Frames seen since the session was created, in any state
	State           State
	Elapsed         float64 // Running seconds of the current run
	Level           int     // Display difficulty level
	SpeedMultiplier float64
	Craft           Craft
	Obstacles       []Obstacle
	Hit             uint64 // ID of the obstacle that ended the run, 0 if none
}

// Obstacle returns the obstacle with the given ID from the snapshot.
func (r FrameResult) Obstacle(id uint64) (Obstacle, bool) {
	for _, o := range r.Obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Digest returns an xxhash64 of the snapshot's simulation contents.
// Two sessions with equal seeds and inputs produce equal digests frame by frame.
func (r FrameResult) Digest() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64+len(r.Obstacles)*96)

	putF := func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	putU := func(v uint64) {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}

	putU(r.Frame)
	putU(uint64(r.State))
	putF(r.Elapsed)
	putF(r.SpeedMultiplier)
	putF(r.Craft.Position.X)
	putF(r.Craft.Position.Y)
	putF(r.Craft.Position.Z)
	putF(r.Craft.Tilt)
	putU(r.Hit)

	for _, o := range r.Obstacles {
		putU(o.ID)
		putU(uint64(o.Kind))
		putF(o.Position.X)
		putF(o.Position.Y)
		putF(o.Position.Z)
		putF(o.Rotation.X)
		putF(o.Rotation.Y)
		putF(o.Rotation.Z)
		putF(o.Radius)
		putF(o.ForwardSpeed)
	}

	_, _ = d.Write(buf)
	return d.Sum64()
}
