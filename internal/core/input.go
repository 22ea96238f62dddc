package core

// Action represents a semantic intent, abstracted from physical key presses.
// The simulation never sees raw key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move paddle left
	ActionRight          // Move paddle right
	ActionStop           // Stop the paddle
	ActionLaunch         // Launch the resting ball
	ActionUp             // Menu navigation up
	ActionDown           // Menu navigation down
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - back to menu
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionStop:
		return "Stop"
	case ActionLaunch:
		return "Launch"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is the paddle movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// InputFrame collects the intents triggered during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Direction resolves the paddle intent of the frame.
// Left and right together cancel out; an explicit stop wins over both.
func (f InputFrame) Direction() (Direction, bool) {
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case f.Has(ActionStop), left && right:
		return DirNone, true
	case left:
		return DirLeft, true
	case right:
		return DirRight, true
	}
	return DirNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
