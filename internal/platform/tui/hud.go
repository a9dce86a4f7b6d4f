package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
)

// FormatClock renders seconds as mm:ss. Minutes keep counting past 59.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// hud is what the overlay needs besides the snapshot.
type hud struct {
	viewTitle string
	demo      bool
	status    string
}

func drawHUD(scr *core.Screen, r course.FrameResult, h hud) {
	left := fmt.Sprintf(" Time %s   Difficulty %d", FormatClock(r.Elapsed), r.Level)
	scr.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := "[" + h.viewTitle + "] "
	if h.demo {
		right = "AUTOPILOT " + right
	}
	scr.DrawTextColored(scr.Width()-utf8.RuneCountInString(right), 0, right, core.ColorGray)

	if h.status != "" {
		scr.DrawTextCentered(scr.Height()-1, h.status, core.ColorYellow)
	}

	switch r.State {
	case course.StateMenu:
		lines := []string{
			"SPACE OBSTACLE COURSE",
			"",
			"Arrows / WASD   steer",
			"P / Esc         pause",
			"Tab             switch view",
			"?               help",
			"",
			"Press SPACE to begin",
		}
		if r.Elapsed > 0 {
			lines = append(lines, "", "Last run "+FormatClock(r.Elapsed))
		}
		drawPanel(scr, lines, core.ColorBrightCyan)
	case course.StatePaused:
		drawPanel(scr, []string{"PAUSED", "", "Press P to resume"}, core.ColorBrightYellow)
	case course.StateGameOver:
		drawPanel(scr, []string{
			"GAME OVER",
			"",
			"You survived for " + FormatClock(r.Elapsed),
			"",
			"Press R to restart",
			"M for menu",
		}, core.ColorBrightRed)
	}
}

// drawPanel draws a framed box with centered lines in the middle of the screen.
func drawPanel(scr *core.Screen, lines []string, c core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	w := inner + 4
	h := len(lines) + 2
	box := core.NewRect((scr.Width()-w)/2, (scr.Height()-h)/2, w, h)

	scr.DrawRect(box, ' ')
	scr.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (w-utf8.RuneCountInString(l))/2
		scr.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
