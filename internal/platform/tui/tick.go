// Package tui runs the obstacle course in a terminal with Bubble Tea.
// It owns the frame scheduler, key mapping with hold emulation, the HUD and
// overlays, and screenshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame interval.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func msSince(start, t time.Time) float64 {
	return float64(t.Sub(start)) / float64(time.Millisecond)
}
