package systems

import (
	"github.com/automoto/sensorbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DisplayEvents drains the collision event queue for this tick. Subscribers
// registered in Setup do the actual work.
func DisplayEvents(ecs *ecs.ECS) {
	components.CollisionEvent.ProcessEvents(ecs.World)
}

// LogCollisionEvent prints a collision with both participants' names. Events
// whose participants can't be resolved any more are reported and dropped.
func LogCollisionEvent(w donburi.World, evt components.CollisionEventData) {
	name1, ok1 := components.NameOf(w, evt.Entity1)
	name2, ok2 := components.NameOf(w, evt.Entity2)
	if !ok1 || !ok2 {
		zap.S().Warnf("ERROR! Some name was not found. Event discarded: %v", evt)
		return
	}
	zap.S().Infof("Collision between %s and %s %s", name1, name2, evt.Kind)
}
