package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Sphere
		expected bool
	}{
		{
			name:     "concentric",
			a:        Sphere{Center: Vec3{0, 0, -2}, Radius: 0.3},
			b:        Sphere{Center: Vec3{0, 0, -2}, Radius: 0.3},
			expected: true,
		},
		{
			name:     "far apart",
			a:        Sphere{Center: Vec3{0, 0, -2}, Radius: 0.3},
			b:        Sphere{Center: Vec3{10, 10, -2}, Radius: 0.3},
			expected: false,
		},
		{
			name:     "exactly touching",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 0.5},
			b:        Sphere{Center: Vec3{1, 0, 0}, Radius: 0.5},
			expected: true,
		},
		{
			name:     "just apart along depth",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 0.5},
			b:        Sphere{Center: Vec3{0, 0, 1.01}, Radius: 0.5},
			expected: false,
		},
		{
			name:     "large planet swallows craft",
			a:        Sphere{Center: Vec3{1, 1, -2}, Radius: 0.3},
			b:        Sphere{Center: Vec3{0, 0, -2.5}, Radius: 2},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}

	assert.Equal(t, Vec3{3, 4, 0}, b.Sub(a))
	assert.Equal(t, Vec3{5, 8, 6}, a.Add(b))
	assert.Equal(t, 5.0, b.Sub(a).Len())
	assert.Equal(t, Vec2{3, 4}, b.Sub(a).XY())
	assert.InDelta(t, 5.0, Vec2{3, 4}.Len(), 1e-12)
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-3, -3, 3, -3},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max), "ClampF(%v, %v, %v)", tc.val, tc.min, tc.max)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.2, Lerp(0.2, 0.7, 0))
	assert.Equal(t, 0.7, Lerp(0.2, 0.7, 1))
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 7, r.Bottom())
}
