package systems

import (
	"testing"

	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicPropRestsOnFloor(t *testing.T) {
	arena := &assets.Arena{
		Width:  1280,
		Height: 720,
		Props: []assets.Prop{
			{Name: "Floor", X: 0, Y: 600, Width: 1280, Height: 32},
			{Name: "Crate", X: 100, Y: 400, Width: 64, Height: 64, Dynamic: true, CollisionEvents: true},
		},
	}
	e, logs := newTestECS(t, arena)

	floor := entityNamed(t, e, "Floor")
	crate := entityNamed(t, e, "Crate")
	character := entityNamed(t, e, "Character")
	characterStart := components.Object.Get(e.World.Entry(character)).Center()

	for i := 0; i < 180; i++ {
		tick(t, e, frame{})
	}

	obj := components.Object.Get(e.World.Entry(crate))
	assert.InDelta(t, 600, obj.Y+obj.H, 0.01)
	assert.InDelta(t, 132, obj.X+obj.W/2, 1e-9, "gravity only moves vertically")
	assert.Zero(t, components.Body.Get(e.World.Entry(crate)).VelocityY)

	assert.Equal(t, characterStart, components.Object.Get(e.World.Entry(character)).Center())

	require.Equal(t, []string{collisionLine(e.World, floor, crate, components.CollisionStarted)}, infoMessages(logs))
}

func TestLockedBodiesIgnoreGravity(t *testing.T) {
	arena := &assets.Arena{
		Width:  1280,
		Height: 720,
		Props: []assets.Prop{
			{Name: "Beacon", X: 100, Y: 100, Width: 50, Height: 50, Dynamic: true, LockTranslation: true},
			{Name: "Anchor", X: 300, Y: 100, Width: 50, Height: 50},
		},
	}
	e, _ := newTestECS(t, arena)

	for i := 0; i < 60; i++ {
		tick(t, e, frame{})
	}

	for _, name := range []string{"Beacon", "Anchor"} {
		obj := components.Object.Get(e.World.Entry(entityNamed(t, e, name)))
		assert.Equal(t, 100.0, obj.Y, name)
	}
}

func TestFallingPropLandsOnCharacter(t *testing.T) {
	arena := &assets.Arena{
		Width:  1280,
		Height: 720,
		Props: []assets.Prop{
			{Name: "Crate", X: 608, Y: 0, Width: 64, Height: 64, Dynamic: true},
		},
	}
	e, logs := newTestECS(t, arena)

	for i := 0; i < 120; i++ {
		tick(t, e, frame{})
	}

	obj := components.Object.Get(e.World.Entry(entityNamed(t, e, "Crate")))
	assert.InDelta(t, 260, obj.Y+obj.H, 0.01)

	// The character has events enabled, so the landing is reported.
	assert.Len(t, infoMessages(logs), 1)
}
