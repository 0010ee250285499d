package archetypes

import (
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Name,
		components.Object,
		components.Body,
	)
	Object = newArchetype(
		components.Controlled,
		components.Name,
		components.Object,
		components.Body,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Name,
		components.Object,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Contacts = newArchetype(
		components.Contacts,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
