package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/registry"
)

// 63x33 leaves a 61x31 plot: 5 columns per unit of x, 2 depth units per row.
func render(r course.FrameResult) *core.Screen {
	scr := core.NewScreen(63, 33)
	New().Render(r, scr)
	return scr
}

func running(obstacles ...course.Obstacle) course.FrameResult {
	return course.FrameResult{
		State:     course.StateRunning,
		Craft:     course.Craft{Position: core.Vec3{Z: -2}, Radius: 0.3},
		Obstacles: obstacles,
	}
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("radar"))
}

func TestFrameAndCraft(t *testing.T) {
	scr := render(running())

	assert.Equal(t, '┌', scr.Get(0, 0))
	assert.Equal(t, '┘', scr.Get(62, 32))
	assert.Equal(t, 'A', scr.Get(31, 25))
	assert.Equal(t, '·', scr.Get(5, 25), "craft depth line")
}

func TestObstaclePlacement(t *testing.T) {
	scr := render(running(
		course.Obstacle{ID: 1, Kind: course.Asteroid, Position: core.Vec3{X: -6, Z: -50}, Radius: 0.05},
		course.Obstacle{ID: 2, Kind: course.Planet, Position: core.Vec3{X: 6, Z: 10}, Radius: 0.05},
	))

	assert.Equal(t, '*', scr.Get(1, 1))
	assert.Equal(t, 'O', scr.Get(61, 31))
}

func TestObstacleWidthFollowsRadius(t *testing.T) {
	scr := render(running(course.Obstacle{ID: 1, Kind: course.Planet, Position: core.Vec3{Z: -20}, Radius: 1}))

	for x := 26; x <= 36; x++ {
		assert.Equal(t, 'O', scr.Get(x, 16), "col %d", x)
	}
	assert.NotEqual(t, 'O', scr.Get(25, 16))
	assert.NotEqual(t, 'O', scr.Get(37, 16))
}

func TestThreatColoring(t *testing.T) {
	scr := render(running(
		course.Obstacle{ID: 1, Kind: course.Planet, Position: core.Vec3{X: -4, Z: -20}, Radius: 0.1},
		course.Obstacle{ID: 2, Kind: course.Planet, Position: core.Vec3{X: 4, Y: 4, Z: -20}, Radius: 0.1},
	))

	assert.Equal(t, core.ColorBrightRed, scr.GetCell(11, 16).Color, "same height band")
	assert.Equal(t, core.ColorGray, scr.GetCell(51, 16).Color, "passes overhead")
}

func TestOutOfWindowIsClamped(t *testing.T) {
	scr := render(running(course.Obstacle{ID: 1, Kind: course.Asteroid, Position: core.Vec3{X: -40, Z: -90}, Radius: 0.05}))
	assert.Equal(t, '*', scr.Get(1, 1))
}

func TestGameOverCraft(t *testing.T) {
	r := running()
	r.State = course.StateGameOver
	scr := render(r)
	assert.Equal(t, 'X', scr.Get(31, 25))
	assert.Equal(t, core.ColorBrightRed, scr.GetCell(31, 25).Color)
}

func TestTinyScreen(t *testing.T) {
	assert.NotPanics(t, func() {
		New().Render(running(), core.NewScreen(2, 2))
	})
}
