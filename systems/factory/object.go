package factory

import (
	"github.com/automoto/sensorbox/archetypes"
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateObject spawns a sensor shape at p, tagged with and named after key.
func CreateObject(ecs *ecs.ECS, key ebiten.Key, p math.Vec2) *donburi.Entry {
	object := archetypes.Object.Spawn(ecs)
	components.Controlled.SetValue(object, components.ControlledData{Key: key})

	attachCollider(ecs, object, key.String(), p,
		cfg.C.Object.Width(), cfg.C.Object.Height(),
		components.BodyData{
			Kind:   components.BodyFixed,
			Sensor: true,
		},
		tags.ResolvObject,
	)

	return object
}

// DestroyObject removes a collider entity and its resolv object.
func DestroyObject(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
