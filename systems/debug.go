package systems

import (
	"image/color"

	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/automoto/sensorbox/fonts"
	"github.com/automoto/sensorbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawColliders outlines every collider and labels it with its name.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.Render {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	labels := cfg.C.Debug.Labels && fonts.Loaded(fonts.Label)

	colliderQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		p := camera.WorldToViewport(math.NewVec2(obj.X, obj.Y), width, height)

		// Cull objects outside viewport
		if p.X+obj.W < 0 || p.X > float64(width) || p.Y+obj.H < 0 || p.Y > float64(height) {
			return
		}

		c := colliderColor(e)
		if e.HasComponent(components.Highlight) {
			c = blend(c, cfg.HighlightColor, components.Highlight.Get(e).Alpha)
		}
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(obj.W), float32(obj.H), 1, c, false)

		if labels && e.HasComponent(components.Name) {
			name := components.Name.Get(e).Value
			text.Draw(screen, name, fonts.Label.Get(), int(p.X)+4, int(p.Y)+14, cfg.LabelColor)
		}
	})
}

// colliderColor picks the outline color from what the collider is.
func colliderColor(e *donburi.Entry) color.RGBA {
	body := components.Body.Get(e)
	switch {
	case e.HasComponent(tags.Character):
		return cfg.CharacterColor
	case body.Sensor:
		return cfg.SensorColor
	case body.Kind == components.BodyDynamic:
		return cfg.DynamicColor
	default:
		return cfg.SolidColor
	}
}

// blend mixes from towards to by t in [0, 1].
func blend(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
