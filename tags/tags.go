package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Prop      = donburi.NewTag().SetName("Prop")
)

// Resolv tags for collision queries
const (
	ResolvSolid     = "solid"
	ResolvSensor    = "sensor"
	ResolvCharacter = "Character"
	ResolvObject    = "Object"
	ResolvProp      = "Prop"
)
