package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow (held)
	ActionDown           // S, Down arrow (held)
	ActionLeft           // A, Left arrow (held)
	ActionRight          // D, Right arrow (held)
	ActionConfirm        // Enter - start or restart
	ActionCancel         // Escape - pause toggle
	ActionFire           // Space - laser toward the target
	ActionAltFire        // Right click, E - super punch projectile
	ActionMelee          // Left click, F - punch at the target
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionCancel:
		return "Cancel"
	case ActionFire:
		return "Fire"
	case ActionAltFire:
		return "AltFire"
	case ActionMelee:
		return "Melee"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Held records controls that are currently down (movement); Actions records
// discrete presses that happened since the previous tick. Target is the
// aim point in playfield coordinates.
type InputFrame struct {
	Held    map[Action]bool
	Actions map[Action]bool
	Target  Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a control as held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld reports whether a control is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Axis returns the raw movement direction from held controls.
// Components are in {-1, 0, 1}; the result is not normalized.
func (f InputFrame) Axis() Vec2 {
	var d Vec2
	if f.IsHeld(ActionUp) {
		d.Y--
	}
	if f.IsHeld(ActionDown) {
		d.Y++
	}
	if f.IsHeld(ActionLeft) {
		d.X--
	}
	if f.IsHeld(ActionRight) {
		d.X++
	}
	return d
}

// Clear resets pressed actions and held controls; Target is kept.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}
