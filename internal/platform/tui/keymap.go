package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// defaultHoldTicks is how long a movement key counts as held after its last
// press. Terminals only report presses and auto-repeat, never releases.
const defaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// Movement keys are emulated as held controls that decay unless the
// terminal keeps repeating them.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // Remaining ticks per movement action
}

// NewKeyMapper creates a key mapper with default bindings.
// holdTicks <= 0 selects the default decay window.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = defaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "e":
		return core.ActionAltFire, false
	case "f":
		return core.ActionMelee, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "p":
		return core.ActionCancel, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Movement
// keys refresh their hold window, everything else is a press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		km.held[action] = km.holdTicks
		delete(km.held, opposite(action))
	default:
		frame.Set(action)
	}
	return isQuit
}

// Tick copies the live held controls into frame and ages them by one tick.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Hold(a)
		if left <= 1 {
			delete(km.held, a)
			continue
		}
		km.held[a] = left - 1
	}
}

// Release drops every held control.
func (km *KeyMapper) Release() {
	clear(km.held)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to a press. Left click punches and
// right click fires the super punch. ok is false for anything else.
func MapMouse(msg tea.MouseMsg) (action core.Action, ok bool) {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ActionMelee, true
	case tea.MouseButtonRight:
		return core.ActionAltFire, true
	}
	return core.ActionNone, false
}
