package systems

import (
	"testing"

	"github.com/automoto/sensorbox/assets"
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newTestECS builds the demo world without a running game. Input is written
// by the tests instead of UpdateInput.
func newTestECS(t *testing.T, arena *assets.Arena) (*ecs.ECS, *observer.ObservedLogs) {
	t.Helper()

	prevCfg := cfg.C
	cfg.C = cfg.Defaults()

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))

	t.Cleanup(func() {
		restore()
		cfg.C = prevCfg
	})

	e := ecs.NewECS(donburi.NewWorld())
	AddUpdateSystems(e)
	Setup(e, arena)
	return e, logs
}

type frame struct {
	held        []ebiten.Key
	justPressed []ebiten.Key
	cursor      *math.Vec2
}

func at(x, y float64) *math.Vec2 {
	p := math.NewVec2(x, y)
	return &p
}

// tick writes the frame into the Input component and runs one update.
func tick(t *testing.T, e *ecs.ECS, f frame) {
	t.Helper()

	entry, ok := components.Input.First(e.World)
	require.True(t, ok, "Setup must create the input singleton")
	input := components.Input.Get(entry)

	input.Held = append(input.Held[:0], f.held...)
	input.JustPressed = append(input.JustPressed[:0], f.justPressed...)
	input.HasCursor = f.cursor != nil
	if f.cursor != nil {
		input.Cursor = *f.cursor
	}

	e.Update()
}

func objects(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	controlledQuery.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func infoMessages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range logs.FilterLevelExact(zapcore.InfoLevel).All() {
		out = append(out, entry.Message)
	}
	return out
}

func warnMessages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range logs.FilterLevelExact(zapcore.WarnLevel).All() {
		out = append(out, entry.Message)
	}
	return out
}
