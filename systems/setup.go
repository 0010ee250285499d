package systems

import (
	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Setup is the startup stage: collision space, camera, character, optional
// arena props and the collision event subscribers.
func Setup(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	width, height := cfg.C.Window.Width, cfg.C.Window.Height
	if arena != nil {
		width = max(width, arena.Width)
		height = max(height, arena.Height)
	}
	cell := cfg.C.Physics.CellSize
	factory.CreateSpace(ecs, width, height, cell, cell)
	factory.CreateContacts(ecs)
	getOrCreateInput(ecs)

	camX, camY := cfg.C.CameraOrigin()
	factory.CreateCamera(ecs, camX, camY)
	character := factory.CreateCharacter(ecs, camX, camY)

	if arena != nil {
		for _, prop := range arena.Props {
			factory.CreateProp(ecs, prop)
		}
		zap.L().Info("arena loaded",
			zap.String("map", arena.Name),
			zap.Int("props", len(arena.Props)),
		)
	}

	components.CollisionEvent.Subscribe(ecs.World, LogCollisionEvent)
	components.CollisionEvent.Subscribe(ecs.World, HighlightOnCollision)

	return character
}

// AddUpdateSystems registers the per-tick systems in the order they run.
// Input polling is registered separately by the scene since it needs a
// running game.
func AddUpdateSystems(ecs *ecs.ECS) {
	ecs.AddSystem(RunIf(NoObjectsExist, SpawnObjectAtCursor))
	ecs.AddSystem(MoveObjectToCursor)
	ecs.AddSystem(DespawnObjectOnKeyReleased)
	ecs.AddSystem(UpdatePhysics)
	ecs.AddSystem(UpdateCollisions)
	ecs.AddSystem(DisplayEvents)
	ecs.AddSystem(UpdateHighlights)
}
