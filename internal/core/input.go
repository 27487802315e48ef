package core

// Action represents a semantic input, abstracted from physical key presses.
// The simulation only ever sees actions, never raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - held direction
	ActionDown           // S, Down arrow - held direction
	ActionLeft           // A, Left arrow - held direction
	ActionRight          // D, Right arrow - held direction
	ActionConfirm        // Enter, Z, Space - interact / advance text
	ActionMenu           // X, M - open the start menu
	ActionCancel         // Escape - close / abort battle
	ActionPrev           // [ , - browse overlay weeks
	ActionNext           // ] . - browse overlay weeks
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionCancel:
		return "Cancel"
	case ActionPrev:
		return "Prev"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four held directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the set of actions active during one simulation tick.
// Setting the same action twice within a tick is a no-op, so a key that
// auto-repeats faster than the tick rate never double-steps.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
