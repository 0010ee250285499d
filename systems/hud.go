package systems

import (
	"fmt"

	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudHint = "Hold any key to place a sensor under the cursor"

// DrawHUD shows the control hint and the number of live contacts.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.Render || !fonts.Loaded(fonts.Hint) {
		return
	}

	face := fonts.Hint.Get()
	text.Draw(screen, hudHint, face, 12, 20, cfg.HintColor)

	if entry, ok := components.Contacts.First(ecs.World); ok {
		contacts := components.Contacts.Get(entry)
		text.Draw(screen, fmt.Sprintf("contacts: %d", len(contacts.Order)), face, 12, 40, cfg.HintColor)
	}
}
