package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, mouse buttons or an autopilot into these.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, left click - flap
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C, Esc, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
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

// Merge adds every action set in other.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// InputSource delivers the input events of one frame. It is polled exactly
// once per tick by frame loops that do not receive events by callback.
type InputSource interface {
	Poll() InputFrame
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() InputFrame

// Poll calls f.
func (f InputSourceFunc) Poll() InputFrame {
	return f()
}
