package systems

import (
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/gamemath"
	"github.com/automoto/sensorbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to dynamic bodies and resolves their vertical
// movement against solid colliders. Locked axes are left untouched.
func UpdatePhysics(ecs *ecs.ECS) {
	gravity := cfg.C.GravityPerTick()
	maxFall := cfg.C.Physics.MaxFallSpeed

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kind != components.BodyDynamic {
			return
		}
		if body.Locked(components.LockTranslationY) {
			body.VelocityY = 0
			return
		}

		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}

		body.VelocityY = gamemath.ClampSpeed(body.VelocityY+gravity, maxFall)
		resolveVerticalMovement(body, obj.Object)
	})
}

// resolveVerticalMovement moves object by its vertical speed, stopping flush
// against the nearest solid in the way. Sensors pass through everything.
func resolveVerticalMovement(body *components.BodyData, object *resolv.Object) {
	dy := body.VelocityY
	if dy == 0 {
		return
	}

	if !body.Sensor {
		if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
			if solid := nearestSolid(object, check, dy); solid != nil {
				dy = check.ContactWithObject(solid).Y()
				body.VelocityY = 0
			}
		}
	}

	object.Y += dy
	object.Update()
}

// nearestSolid picks the first solid the object would hit moving by dy.
// resolv reports everything sharing a cell, so horizontal overlap is checked here.
func nearestSolid(object *resolv.Object, check *resolv.Collision, dy float64) *resolv.Object {
	var nearest *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.OverlapsX(rectOf(object), rectOf(solid)) {
			continue
		}
		if dy > 0 {
			if solid.Y+solid.H <= object.Y {
				continue // above us
			}
			if nearest == nil || solid.Y < nearest.Y {
				nearest = solid
			}
		} else {
			if solid.Y >= object.Y+object.H {
				continue // below us
			}
			if nearest == nil || solid.Y+solid.H > nearest.Y+nearest.H {
				nearest = solid
			}
		}
	}

	if nearest == nil {
		return nil
	}
	// Only stop when the move actually reaches the solid.
	if dy > 0 && object.Y+object.H+dy < nearest.Y {
		return nil
	}
	if dy < 0 && object.Y+dy > nearest.Y+nearest.H {
		return nil
	}
	return nearest
}
