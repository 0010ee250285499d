package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a 2D camera looking at Position, which maps to the center of
// the viewport.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ViewportToWorld projects a viewport pixel position into world space. It
// reports false when the position lies outside the viewport.
func (c *CameraData) ViewportToWorld(cursor math.Vec2, width, height int) (math.Vec2, bool) {
	if width <= 0 || height <= 0 {
		return math.Vec2{}, false
	}
	if cursor.X < 0 || cursor.Y < 0 || cursor.X >= float64(width) || cursor.Y >= float64(height) {
		return math.Vec2{}, false
	}
	return math.NewVec2(
		c.Position.X-float64(width)/2+cursor.X,
		c.Position.Y-float64(height)/2+cursor.Y,
	), true
}

// WorldToViewport is the inverse of ViewportToWorld, without bounds checks.
func (c *CameraData) WorldToViewport(p math.Vec2, width, height int) math.Vec2 {
	return math.NewVec2(
		p.X-c.Position.X+float64(width)/2,
		p.Y-c.Position.Y+float64(height)/2,
	)
}
