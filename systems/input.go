package systems

import (
	"slices"

	"github.com/automoto/sensorbox/archetypes"
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateInput polls keyboard and cursor state into the Input component.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Held = inpututil.AppendPressedKeys(input.Held[:0])
	input.JustPressed = inpututil.AppendJustPressedKeys(input.JustPressed[:0])
	// Keys are compared by code so simultaneous presses resolve the same way every run.
	slices.Sort(input.JustPressed)

	x, y := ebiten.CursorPosition()
	input.Cursor = math.NewVec2(float64(x), float64(y))
	input.HasCursor = x >= 0 && y >= 0 && x < cfg.C.Window.Width && y < cfg.C.Window.Height
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (nothing held, no cursor)
	}
	return components.Input.Get(entry)
}

// currentInput returns this tick's input snapshot, if one exists.
func currentInput(w donburi.World) (*components.InputData, bool) {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}

// cursorWorldPosition projects the cursor through the camera. It reports
// false when there is no input, no camera or the cursor is off the viewport.
func cursorWorldPosition(w donburi.World) (math.Vec2, bool) {
	input, ok := currentInput(w)
	if !ok || !input.HasCursor {
		return math.Vec2{}, false
	}

	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return math.Vec2{}, false
	}
	camera := components.Camera.Get(cameraEntry)

	return camera.ViewportToWorld(input.Cursor, cfg.C.Window.Width, cfg.C.Window.Height)
}
