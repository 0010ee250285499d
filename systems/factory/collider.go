package factory

import (
	"github.com/automoto/sensorbox/components"
	"github.com/automoto/sensorbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// attachCollider gives entry a rectangular resolv object centered on center,
// links it back to the entry and adds it to the space if one exists.
func attachCollider(ecs *ecs.ECS, entry *donburi.Entry, name string, center math.Vec2, w, h float64, body components.BodyData, resolvTags ...string) {
	if body.Sensor {
		resolvTags = append(resolvTags, tags.ResolvSensor)
	} else {
		resolvTags = append(resolvTags, tags.ResolvSolid)
	}

	obj := resolv.NewObject(center.X-w/2, center.Y-h/2, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Name.SetValue(entry, components.NameData{Value: name})
	components.Body.SetValue(entry, body)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	} else {
		obj.Update()
	}
}
