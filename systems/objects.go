package systems

import (
	"github.com/automoto/sensorbox/components"
	"github.com/automoto/sensorbox/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpawnObjectAtCursor creates a controlled object under the cursor for the
// first key pressed this tick. Run it behind NoObjectsExist.
func SpawnObjectAtCursor(ecs *ecs.ECS) {
	input, ok := currentInput(ecs.World)
	if !ok || len(input.JustPressed) == 0 {
		return
	}

	point, ok := cursorWorldPosition(ecs.World)
	if !ok {
		return
	}

	key := input.JustPressed[0]
	factory.CreateObject(ecs, key, point)
	zap.L().Debug("object spawned",
		zap.Stringer("key", key),
		zap.Float64("x", point.X),
		zap.Float64("y", point.Y),
	)

	if len(input.JustPressed) > 1 {
		dropped := make([]string, 0, len(input.JustPressed)-1)
		for _, k := range input.JustPressed[1:] {
			dropped = append(dropped, k.String())
		}
		zap.L().Debug("simultaneous keys ignored", zap.Strings("keys", dropped))
	}
}

// MoveObjectToCursor keeps the controlled object under the cursor. When the
// cursor can't be projected the object stays where it was.
func MoveObjectToCursor(ecs *ecs.ECS) {
	point, ok := cursorWorldPosition(ecs.World)
	if !ok {
		return
	}

	entry, ok := singleObject(ecs.World)
	if !ok {
		return
	}

	components.Object.Get(entry).SetCenter(point)
}

// DespawnObjectOnKeyReleased destroys the controlled object once the key that
// spawned it is no longer held.
func DespawnObjectOnKeyReleased(ecs *ecs.ECS) {
	entry, ok := singleObject(ecs.World)
	if !ok {
		return
	}

	input, ok := currentInput(ecs.World)
	if !ok {
		return
	}

	key := components.Controlled.Get(entry).Key
	if input.IsHeld(key) {
		return
	}

	factory.DestroyObject(ecs, entry)
	zap.L().Debug("object despawned", zap.Stringer("key", key))
}
