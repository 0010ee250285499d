package factory

import (
	"github.com/automoto/sensorbox/archetypes"
	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/components"
	"github.com/automoto/sensorbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProp spawns a collider described by the arena map.
func CreateProp(ecs *ecs.ECS, p assets.Prop) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)

	body := components.BodyData{
		Kind:         components.BodyFixed,
		Sensor:       p.Sensor,
		ActiveEvents: p.CollisionEvents,
	}
	if p.Dynamic {
		body.Kind = components.BodyDynamic
	}
	if p.LockTranslation {
		body.LockedAxes = components.LockTranslation
	}

	attachCollider(ecs, prop, p.Name,
		math.NewVec2(p.X+p.Width/2, p.Y+p.Height/2),
		p.Width, p.Height, body, tags.ResolvProp)

	return prop
}
