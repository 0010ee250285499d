package factory

import (
	"github.com/automoto/sensorbox/archetypes"
	"github.com/automoto/sensorbox/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateContacts creates the singleton that remembers which pairs are touching.
func CreateContacts(ecs *ecs.ECS) *donburi.Entry {
	contacts := archetypes.Contacts.Spawn(ecs)
	components.Contacts.SetValue(contacts, components.ContactsData{
		Active: make(map[components.ContactPair]components.CollisionFlags),
	})
	return contacts
}
