package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HighlightData fades a collider's outline after a collision starts.
type HighlightData struct {
	Tween *gween.Tween
	Alpha float32 // current intensity, 1 = fully lit
}

var Highlight = donburi.NewComponentType[HighlightData]()
