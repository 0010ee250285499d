package systems

import (
	"github.com/automoto/sensorbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var controlledQuery = donburi.NewQuery(filter.Contains(components.Controlled))

// RunIf wraps a system so that it only runs while cond holds.
func RunIf(cond func(*ecs.ECS) bool, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !cond(e) {
			return
		}
		system(e)
	}
}

// NoObjectsExist reports whether no controlled object is alive.
func NoObjectsExist(ecs *ecs.ECS) bool {
	return controlledQuery.Count(ecs.World) == 0
}

// singleObject returns the controlled object when exactly one exists.
func singleObject(w donburi.World) (*donburi.Entry, bool) {
	if controlledQuery.Count(w) != 1 {
		return nil, false
	}
	return controlledQuery.First(w)
}
