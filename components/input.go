package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the per-tick snapshot of keyboard and cursor state.
// It is rewritten by UpdateInput at the start of every tick.
type InputData struct {
	Held        []ebiten.Key // keys held down this tick
	JustPressed []ebiten.Key // keys that went down this tick, ascending key order
	Cursor      math.Vec2    // cursor position in viewport pixels
	HasCursor   bool         // false when the cursor is outside the window
}

var Input = donburi.NewComponentType[InputData]()

// IsHeld reports whether key is down this tick.
func (i *InputData) IsHeld(key ebiten.Key) bool {
	for _, k := range i.Held {
		if k == key {
			return true
		}
	}
	return false
}
