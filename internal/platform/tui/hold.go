package tui

import (
	"github.com/vovakirdan/space-course/internal/core"
)

var directions = []core.Action{
	core.ActionMoveUp,
	core.ActionMoveDown,
	core.ActionMoveLeft,
	core.ActionMoveRight,
}

// HoldTracker turns key presses into held directions. Terminals report
// presses and auto-repeats but never releases, so a direction counts as held
// until holdMs pass without another press. The first press of a direction
// holds for firstMs instead, which bridges the pause before the terminal
// starts repeating the key.
type HoldTracker struct {
	holdMs  float64
	firstMs float64
	until   map[core.Action]float64
}

// NewHoldTracker creates a tracker with the given hold windows. A firstMs
// shorter than holdMs is raised to holdMs.
func NewHoldTracker(holdMs, firstMs int) *HoldTracker {
	if holdMs <= 0 {
		holdMs = core.DefaultConfig().HoldMs
	}
	return &HoldTracker{
		holdMs:  float64(holdMs),
		firstMs: float64(max(firstMs, holdMs)),
		until:   make(map[core.Action]float64),
	}
}

// Press records a press of a directional action at nowMs.
// The opposite direction is released immediately.
func (h *HoldTracker) Press(a core.Action, nowMs float64) {
	if !a.IsDirectional() {
		return
	}
	delete(h.until, opposite(a))
	if until, ok := h.until[a]; ok && nowMs < until {
		h.until[a] = max(until, nowMs+h.holdMs)
		return
	}
	h.until[a] = nowMs + h.firstMs
}

// Held returns the directions still held at nowMs, in a fixed order, and
// forgets expired ones.
func (h *HoldTracker) Held(nowMs float64) []core.Action {
	var held []core.Action
	for _, a := range directions {
		until, ok := h.until[a]
		if !ok {
			continue
		}
		if nowMs >= until {
			delete(h.until, a)
			continue
		}
		held = append(held, a)
	}
	return held
}

// Clear releases every direction.
func (h *HoldTracker) Clear() {
	clear(h.until)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveUp:
		return core.ActionMoveDown
	case core.ActionMoveDown:
		return core.ActionMoveUp
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	}
	return core.ActionNone
}
