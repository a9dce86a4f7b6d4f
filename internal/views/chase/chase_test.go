package chase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/registry"
)

func running(obstacles ...course.Obstacle) course.FrameResult {
	return course.FrameResult{
		State:     course.StateRunning,
		Craft:     course.Craft{Position: core.Vec3{Z: -2}, Radius: 0.3},
		Obstacles: obstacles,
	}
}

func obstacle(id uint64, kind course.ObstacleKind, x, y, z, r float64) course.Obstacle {
	return course.Obstacle{ID: id, Kind: kind, Position: core.Vec3{X: x, Y: y, Z: z}, Radius: r}
}

func render(r course.FrameResult) *core.Screen {
	scr := core.NewScreen(80, 24)
	New().Render(r, scr)
	return scr
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("chase"))
	v, err := registry.Create("chase")
	assert.NoError(t, err)
	assert.Equal(t, "Chase Camera", v.Title())
}

func TestCraftAtScreenCentre(t *testing.T) {
	scr := render(running())
	assert.Equal(t, '<', scr.Get(39, 12))
	assert.Equal(t, 'A', scr.Get(40, 12))
	assert.Equal(t, '>', scr.Get(41, 12))
	assert.Equal(t, core.ColorBrightCyan, scr.GetCell(40, 12).Color)
}

func TestCraftFollowsPosition(t *testing.T) {
	r := running()
	r.Craft.Position.X = 3
	r.Craft.Position.Y = 2
	scr := render(r)

	row := strings.Split(scr.String(), "\n")
	found := false
	for y, line := range row {
		if x := strings.IndexRune(line, 'A'); x >= 0 {
			assert.Greater(t, x, 40, "right of centre")
			assert.Less(t, y, 12, "above centre")
			found = true
		}
	}
	assert.True(t, found)
}

func TestCraftSprite(t *testing.T) {
	tests := []struct {
		name string
		tilt float64
		left rune
	}{
		{"level", 0, '<'},
		{"small bank stays level", 0.1, '<'},
		{"bank left", 0.3, '/'},
		{"bank right", -0.3, '-'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := running()
			r.Craft.Tilt = tc.tilt
			assert.Equal(t, tc.left, render(r).Get(39, 12))
		})
	}
}

func TestCraftSpinsOnMenu(t *testing.T) {
	r := running()
	r.State = course.StateMenu

	r.Frame = 0
	assert.Equal(t, '<', render(r).Get(39, 12))
	r.Frame = 8
	assert.Equal(t, '/', render(r).Get(39, 12))
}

func TestGameOverMarksCraftAndHit(t *testing.T) {
	r := running(obstacle(5, course.Planet, 3, 0, -10, 1))
	r.State = course.StateGameOver
	r.Hit = 5
	scr := render(r)

	assert.Equal(t, 'X', scr.Get(40, 12))
	assert.Equal(t, core.ColorBrightRed, scr.GetCell(46, 12).Color)
}

func TestObstacleGlyphs(t *testing.T) {
	scr := render(running(
		obstacle(1, course.Planet, 3, 0, -10, 1),
		obstacle(2, course.Asteroid, -3, 0, -10, 1),
		obstacle(3, course.Asteroid, 0, 2, -50, 0.3),
	))

	assert.Equal(t, 'O', scr.Get(46, 12), "near planet disc")
	assert.Equal(t, '@', scr.Get(33, 12), "near asteroid disc")
	assert.Equal(t, '*', scr.Get(40, 11), "far asteroid")
}

func TestNearerObstacleDrawsOnTop(t *testing.T) {
	// Both lie on the same ray from the camera
	far := obstacle(1, course.Asteroid, 3, 1, -40, 0.3)
	near := obstacle(2, course.Planet, 1.5, 0.5, -17.5, 0.5)

	assert.Equal(t, 'O', render(running(far, near)).Get(42, 11))
	assert.Equal(t, 'O', render(running(near, far)).Get(42, 11))
}

func TestPassedObstacleCoversCraft(t *testing.T) {
	scr := render(running(obstacle(1, course.Planet, 0, 0, 0, 0.3)))
	assert.Equal(t, 'O', scr.Get(40, 12))
}

func TestObstacleBehindCameraHidden(t *testing.T) {
	scr := render(running(
		obstacle(1, course.Planet, 0, 0, 8, 1),
		obstacle(2, course.Planet, 0, 0, 4.8, 1),
	))
	assert.NotContains(t, scr.String(), "O")
}

func TestStarfieldScrolls(t *testing.T) {
	a := running()
	b := running()
	b.Frame = 50

	sa, sb := render(a).String(), render(b).String()
	assert.NotEqual(t, sa, sb)
	assert.Positive(t, strings.Count(sa, ".")+strings.Count(sa, "+"))
}

func TestRenderEmptyScreen(t *testing.T) {
	assert.NotPanics(t, func() {
		New().Render(running(obstacle(1, course.Planet, 0, 0, -10, 1)), core.NewScreen(0, 0))
	})
}
