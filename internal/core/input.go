package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h
	ActionRight          // Right arrow, l
	ActionDown           // Down arrow, j
	ActionRotate         // Up arrow, k
	ActionPause          // P, Escape
	ActionRestart        // R
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves or rotates the active piece.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionDown, ActionRotate:
		return true
	default:
		return false
	}
}

// InputFrame represents the input collected for one simulation tick.
// Control actions accumulate; at most one movement action is kept, the
// first one received, so one intent is applied per tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	movement Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// A second movement action in the same frame is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if a.IsMovement() {
		if f.movement != ActionNone {
			return
		}
		f.movement = a
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Movement returns the movement action for this frame, or ActionNone.
func (f InputFrame) Movement() Action {
	return f.movement
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.movement = ActionNone
}
