package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/sensorbox/assets"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type ArenaScene struct {
	ecs   *ecs.ECS
	arena *assets.Arena
	once  sync.Once
}

// NewArenaScene creates the demo scene. arena may be nil for the bare
// character-only setup.
func NewArenaScene(arena *assets.Arena) *ArenaScene {
	return &ArenaScene{arena: arena}
}

func (s *ArenaScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be polled before anything reads it
	ecs.AddSystem(systems.UpdateInput)
	systems.AddUpdateSystems(ecs)

	ecs.AddRenderer(cfg.Default, systems.DrawColliders)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = ecs

	systems.Setup(s.ecs, s.arena)
}
