package core

// Action represents a logical control action, abstracted from physical key presses.
// Key identifiers are mapped to actions by the platform layer.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow, numpad 8
	ActionMoveDown         // S, Down arrow, numpad 2
	ActionMoveLeft         // A, Left arrow, numpad 4
	ActionMoveRight        // D, Right arrow, numpad 6
	ActionPause            // P, Escape - pause/unpause
	ActionStart            // Space, Enter - start from menu
	ActionRestart          // R - restart after game over
	ActionMenu             // M - back to menu after game over
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is one of the four move actions.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		return true
	}
	return false
}

// InputState tracks which logical actions are currently held.
// The zero value has nothing held and is ready to use.
type InputState struct {
	held map[Action]bool
}

// NewInputState creates an empty input state.
func NewInputState() InputState {
	return InputState{held: make(map[Action]bool)}
}

// Set marks an action as held or released.
func (s *InputState) Set(a Action, held bool) {
	if a == ActionNone {
		return
	}
	if s.held == nil {
		s.held = make(map[Action]bool)
	}
	if held {
		s.held[a] = true
	} else {
		delete(s.held, a)
	}
}

// Held returns true if the given action is currently held.
func (s InputState) Held(a Action) bool {
	return s.held[a]
}

// Release clears every held action.
func (s *InputState) Release() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Axis returns the net direction of the held move actions.
// dx is -1 for left, +1 for right; dy is +1 for up, -1 for down.
// Opposite directions held together cancel out.
func (s InputState) Axis() (dx, dy int) {
	if s.Held(ActionMoveRight) {
		dx++
	}
	if s.Held(ActionMoveLeft) {
		dx--
	}
	if s.Held(ActionMoveUp) {
		dy++
	}
	if s.Held(ActionMoveDown) {
		dy--
	}
	return dx, dy
}
