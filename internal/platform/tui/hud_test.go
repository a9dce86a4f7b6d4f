package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{9.99, "00:09"},
		{75, "01:15"},
		{3600 + 5, "60:05"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatClock(tc.in), "%v", tc.in)
	}
}

func hudScreen(r course.FrameResult, h hud) string {
	scr := core.NewScreen(80, 23)
	drawHUD(scr, r, h)
	return scr.String()
}

func TestHUDShowsTimeAndLevel(t *testing.T) {
	out := hudScreen(course.FrameResult{State: course.StateRunning, Elapsed: 65, Level: 3}, hud{viewTitle: "Radar"})

	assert.Contains(t, out, "Time 01:05")
	assert.Contains(t, out, "Difficulty 3")
	assert.Contains(t, out, "[Radar]")
	assert.NotContains(t, out, "AUTOPILOT")
}

func TestHUDOverlays(t *testing.T) {
	tests := []struct {
		name  string
		r     course.FrameResult
		want  []string
		never []string
	}{
		{
			name:  "menu",
			r:     course.FrameResult{State: course.StateMenu, Level: 1},
			want:  []string{"SPACE OBSTACLE COURSE", "Press SPACE to begin"},
			never: []string{"Last run"},
		},
		{
			name: "menu after a run",
			r:    course.FrameResult{State: course.StateMenu, Elapsed: 42, Level: 2},
			want: []string{"Last run 00:42"},
		},
		{
			name:  "paused",
			r:     course.FrameResult{State: course.StatePaused, Level: 1},
			want:  []string{"PAUSED", "Press P to resume"},
			never: []string{"Press SPACE"},
		},
		{
			name: "game over",
			r:    course.FrameResult{State: course.StateGameOver, Elapsed: 75.4, Level: 3},
			want: []string{"GAME OVER", "You survived for 01:15", "Press R to restart"},
		},
		{
			name:  "running has no panel",
			r:     course.FrameResult{State: course.StateRunning, Level: 1},
			never: []string{"PAUSED", "GAME OVER", "SPACE OBSTACLE COURSE"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := hudScreen(tc.r, hud{viewTitle: "Chase Camera"})
			for _, s := range tc.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.never {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestHUDDemoAndStatus(t *testing.T) {
	out := hudScreen(course.FrameResult{State: course.StateRunning}, hud{viewTitle: "Chase Camera", demo: true, status: "saved shot.txt"})
	assert.Contains(t, out, "AUTOPILOT [Chase Camera]")
	assert.Contains(t, out, "saved shot.txt")
}
