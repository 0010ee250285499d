package systems

import (
	"github.com/automoto/sensorbox/components"
	cfg "github.com/automoto/sensorbox/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HighlightOnCollision lights up both participants of a started collision.
func HighlightOnCollision(w donburi.World, evt components.CollisionEventData) {
	if evt.Kind != components.CollisionStarted {
		return
	}

	for _, entity := range []donburi.Entity{evt.Entity1, evt.Entity2} {
		if !w.Valid(entity) {
			continue
		}
		entry := w.Entry(entity)
		if !entry.HasComponent(components.Highlight) {
			entry.AddComponent(components.Highlight)
		}
		components.Highlight.SetValue(entry, components.HighlightData{
			Tween: gween.New(1, 0, float32(cfg.C.Debug.HighlightSeconds), ease.OutQuad),
			Alpha: 1,
		})
	}
}

// UpdateHighlights advances highlight fades and drops the finished ones.
func UpdateHighlights(ecs *ecs.ECS) {
	dt := float32(1 / cfg.C.Physics.TicksPerSecond)

	var finished []*donburi.Entry
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		if h.Tween == nil {
			finished = append(finished, e)
			return
		}
		alpha, done := h.Tween.Update(dt)
		h.Alpha = alpha
		if done {
			finished = append(finished, e)
		}
	})

	// Removing a component changes the archetype; never do it inside Each.
	for _, e := range finished {
		e.RemoveComponent(components.Highlight)
	}
}
