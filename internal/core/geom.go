// Package core provides fundamental types and utilities for the course.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a plain 3D vector. Values have no identity.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// LenSq returns the squared length of v.
func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sphere is a bounding sphere used for collision detection.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Intersects reports whether two spheres touch or overlap.
// Spheres exactly touching (distance == r1+r2) count as intersecting.
func (s Sphere) Intersects(other Sphere) bool {
	sum := s.Radius + other.Radius
	return s.Center.Sub(other.Center).LenSq() <= sum*sum
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp maps t in [0,1] onto [a,b].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
