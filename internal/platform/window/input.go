package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

// holdBindings are polled every tick; a key counts while it is down.
var holdBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// pressBindings fire once on the tick the key goes down.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionAltFire: {ebiten.KeyE},
	core.ActionMelee:   {ebiten.KeyF},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionCancel:  {ebiten.KeyEscape, ebiten.KeyP},
	core.ActionQuit:    {ebiten.KeyQ},
}

var mouseBindings = map[ebiten.MouseButton]core.Action{
	ebiten.MouseButtonLeft:  core.ActionMelee,
	ebiten.MouseButtonRight: core.ActionAltFire,
}

// pollInput fills frame from the keyboard and mouse state of this tick.
// The cursor is the aim target.
func pollInput(frame *core.InputFrame) {
	for action, keys := range holdBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Hold(action)
				break
			}
		}
	}
	for action, keys := range pressBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for button, action := range mouseBindings {
		if inpututil.IsMouseButtonJustPressed(button) {
			frame.Set(action)
		}
	}

	x, y := ebiten.CursorPosition()
	frame.Target = core.V(float64(x), float64(y))
}
