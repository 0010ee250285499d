package factory

import (
	"github.com/automoto/sensorbox/archetypes"
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CharacterName is the display name of the persistent character body.
const CharacterName = "Character"

// CreateCharacter spawns the dynamic, translation-locked character with
// collision events enabled.
func CreateCharacter(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	attachCollider(ecs, character, CharacterName, math.NewVec2(x, y),
		cfg.C.Character.Width(), cfg.C.Character.Height(),
		components.BodyData{
			Kind:         components.BodyDynamic,
			LockedAxes:   components.LockTranslation,
			ActiveEvents: true,
		},
		tags.ResolvCharacter,
	)

	return character
}
