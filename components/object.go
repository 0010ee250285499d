package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its collider in the resolv space.
// Entity positions are the collider's center; resolv stores the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the collider's center in world space.
func (o ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the collider so that its center sits on p and refreshes its
// cells in the space.
func (o ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
