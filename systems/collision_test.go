package systems

import (
	"fmt"
	"strings"
	"testing"

	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionLine builds the expected log line; pairs are reported lower entity first.
func collisionLine(w donburi.World, a, b donburi.Entity, kind components.CollisionKind) string {
	pair := components.NewContactPair(a, b)
	name1, _ := components.NameOf(w, pair.A)
	name2, _ := components.NameOf(w, pair.B)
	return fmt.Sprintf("Collision between %s and %s %s", name1, name2, kind)
}

func entityNamed(t *testing.T, e *ecs.ECS, name string) donburi.Entity {
	t.Helper()
	var found *donburi.Entry
	components.Name.Each(e.World, func(entry *donburi.Entry) {
		if components.Name.Get(entry).Value == name {
			found = entry
		}
	})
	require.NotNil(t, found, "no entity named %q", name)
	return found.Entity()
}

func TestCollisionStartedAndStopped(t *testing.T) {
	e, logs := newTestECS(t, nil)
	character := entityNamed(t, e, "Character")

	tick(t, e, frame{
		held:        []ebiten.Key{ebiten.KeyA},
		justPressed: []ebiten.Key{ebiten.KeyA},
		cursor:      at(640, 360),
	})
	object := entityNamed(t, e, "A")
	started := collisionLine(e.World, character, object, components.CollisionStarted)
	stopped := collisionLine(e.World, character, object, components.CollisionStopped)

	assert.Equal(t, []string{started}, infoMessages(logs))
	assert.Contains(t, []string{
		"Collision between Character and A started",
		"Collision between A and Character started",
	}, started)

	// Still overlapping: nothing new.
	tick(t, e, frame{held: []ebiten.Key{ebiten.KeyA}, cursor: at(650, 370)})
	assert.Equal(t, []string{started}, infoMessages(logs))

	tick(t, e, frame{held: []ebiten.Key{ebiten.KeyA}, cursor: at(50, 50)})
	assert.Equal(t, []string{started, stopped}, infoMessages(logs))
	assert.Empty(t, warnMessages(logs))

	// Events are drained every tick, never replayed.
	for i := 0; i < 10; i++ {
		tick(t, e, frame{held: []ebiten.Key{ebiten.KeyA}, cursor: at(50, 50)})
	}
	assert.Len(t, infoMessages(logs), 2)
}

func TestCollisionWithDespawnedObjectIsDiscarded(t *testing.T) {
	e, logs := newTestECS(t, nil)

	tick(t, e, frame{
		held:        []ebiten.Key{ebiten.KeyA},
		justPressed: []ebiten.Key{ebiten.KeyA},
		cursor:      at(640, 360),
	})
	require.Len(t, infoMessages(logs), 1)

	tick(t, e, frame{cursor: at(640, 360)})
	require.Empty(t, objects(e))

	warns := warnMessages(logs)
	require.Len(t, warns, 1)
	assert.True(t, strings.HasPrefix(warns[0], "ERROR! Some name was not found. Event discarded: Stopped("), warns[0])
	assert.Contains(t, warns[0], "REMOVED")
	assert.Len(t, infoMessages(logs), 1, "no stopped line for a destroyed participant")

	contacts, ok := components.Contacts.First(e.World)
	require.True(t, ok)
	assert.Empty(t, components.Contacts.Get(contacts).Active)
}

func TestCollisionFlags(t *testing.T) {
	arena := &assets.Arena{
		Width:  1280,
		Height: 720,
		Props: []assets.Prop{
			{Name: "Pad", X: 0, Y: 0, Width: 100, Height: 100, Sensor: true, CollisionEvents: true},
			{Name: "Beacon", X: 1100, Y: 0, Width: 100, Height: 100, Dynamic: true, Sensor: true, LockTranslation: true, CollisionEvents: true},
		},
	}

	t.Run("Two fixed bodies never report", func(t *testing.T) {
		e, logs := newTestECS(t, arena)
		tick(t, e, frame{
			held:        []ebiten.Key{ebiten.KeyQ},
			justPressed: []ebiten.Key{ebiten.KeyQ},
			cursor:      at(50, 50),
		})
		require.Len(t, objects(e), 1)
		assert.Empty(t, infoMessages(logs))
	})

	t.Run("Dynamic sensor reports with the sensor flag", func(t *testing.T) {
		e, logs := newTestECS(t, arena)

		var flags []components.CollisionFlags
		components.CollisionEvent.Subscribe(e.World, func(_ donburi.World, evt components.CollisionEventData) {
			flags = append(flags, evt.Flags)
		})

		tick(t, e, frame{
			held:        []ebiten.Key{ebiten.KeyQ},
			justPressed: []ebiten.Key{ebiten.KeyQ},
			cursor:      at(1150, 50),
		})

		beacon := entityNamed(t, e, "Beacon")
		object := entityNamed(t, e, "Q")
		assert.Equal(t, []string{collisionLine(e.World, beacon, object, components.CollisionStarted)}, infoMessages(logs))
		assert.Equal(t, []components.CollisionFlags{components.FlagSensor}, flags)
	})
}

func TestSensorsNeedRealOverlap(t *testing.T) {
	e, logs := newTestECS(t, nil)

	// Character spans x 540..740; an object centered at 439 ends at 539.
	tick(t, e, frame{
		held:        []ebiten.Key{ebiten.KeyA},
		justPressed: []ebiten.Key{ebiten.KeyA},
		cursor:      at(439, 360),
	})
	assert.Empty(t, infoMessages(logs))

	tick(t, e, frame{held: []ebiten.Key{ebiten.KeyA}, cursor: at(445, 360)})
	assert.Len(t, infoMessages(logs), 1)
}

func TestLogCollisionEvent(t *testing.T) {
	e, logs := newTestECS(t, nil)
	character := entityNamed(t, e, "Character")

	gone := e.World.Create(components.Name)
	e.World.Remove(gone)

	LogCollisionEvent(e.World, components.CollisionEventData{
		Kind:    components.CollisionStopped,
		Entity1: character,
		Entity2: gone,
	})
	LogCollisionEvent(e.World, components.CollisionEventData{
		Kind:    components.CollisionStarted,
		Entity1: character,
		Entity2: character,
	})

	assert.Equal(t, []string{"Collision between Character and Character started"}, infoMessages(logs))
	warns := warnMessages(logs)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "ERROR! Some name was not found. Event discarded: Stopped(")
}

func TestHighlightFadesOut(t *testing.T) {
	e, _ := newTestECS(t, nil)
	character := entityNamed(t, e, "Character")

	tick(t, e, frame{
		held:        []ebiten.Key{ebiten.KeyA},
		justPressed: []ebiten.Key{ebiten.KeyA},
		cursor:      at(640, 360),
	})

	entry := e.World.Entry(character)
	require.True(t, entry.HasComponent(components.Highlight))
	alpha := components.Highlight.Get(entry).Alpha
	assert.Less(t, alpha, float32(1))
	assert.Greater(t, alpha, float32(0))

	for i := 0; i < 45; i++ {
		tick(t, e, frame{held: []ebiten.Key{ebiten.KeyA}, cursor: at(640, 360)})
	}
	assert.False(t, e.World.Entry(character).HasComponent(components.Highlight))
}
