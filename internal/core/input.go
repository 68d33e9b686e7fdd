package core

// Action represents a semantic input signal, abstracted from physical devices.
// This allows the simulation to work with intents rather than raw key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionFire             // Primary mouse button / Space - launch the ball
	ActionSizeSmall        // Small ball size modifier
	ActionSizeLarge        // Large ball size modifier
	ActionQuit             // Window close, Q, Ctrl+C
	ActionEscape           // Escape key
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionSizeSmall:
		return "SizeSmall"
	case ActionSizeLarge:
		return "SizeLarge"
	case ActionQuit:
		return "Quit"
	case ActionEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// InputFrame is the already-sampled input for a single simulation tick.
// PointerX is the horizontal pointer coordinate in logical canvas units;
// Actions holds every signal that is held (or was pressed) during the tick.
type InputFrame struct {
	PointerX float64
	Actions  map[Action]bool
}

// NewInputFrame creates an empty input frame with the pointer at pointerX.
func NewInputFrame(pointerX float64) InputFrame {
	return InputFrame{
		PointerX: pointerX,
		Actions:  make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// WantsExit reports whether the frame carries a quit or escape request.
func (f InputFrame) WantsExit() bool {
	return f.Has(ActionQuit) || f.Has(ActionEscape)
}

// Clear releases all actions. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame(f.PointerX)
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
