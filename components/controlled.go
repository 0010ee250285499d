package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ControlledData marks the shape currently held under the cursor. Key is the
// key that spawned it and is never changed afterwards.
type ControlledData struct {
	Key ebiten.Key
}

var Controlled = donburi.NewComponentType[ControlledData]()
