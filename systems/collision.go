package systems

import (
	"sort"

	"github.com/automoto/sensorbox/components"
	"github.com/automoto/sensorbox/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var colliderQuery = donburi.NewQuery(filter.Contains(components.Object, components.Body))

// UpdateCollisions diffs the touching pairs against the previous tick and
// publishes Started/Stopped events. Stopped events come first, in the order
// the contacts started; new contacts follow in entity order.
func UpdateCollisions(ecs *ecs.ECS) {
	contactsEntry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(contactsEntry)
	if contacts.Active == nil {
		contacts.Active = make(map[components.ContactPair]components.CollisionFlags)
	}

	var colliders []*donburi.Entry
	colliderQuery.Each(ecs.World, func(e *donburi.Entry) {
		colliders = append(colliders, e)
	})

	current := make(map[components.ContactPair]components.CollisionFlags)
	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			flags, touching := contactBetween(colliders[i], colliders[j])
			if !touching {
				continue
			}
			current[components.NewContactPair(colliders[i].Entity(), colliders[j].Entity())] = flags
		}
	}

	order := make([]components.ContactPair, 0, len(current))
	for _, pair := range contacts.Order {
		flags := contacts.Active[pair]
		if _, still := current[pair]; still {
			order = append(order, pair)
			continue
		}
		if !ecs.World.Valid(pair.A) || !ecs.World.Valid(pair.B) {
			flags |= components.FlagRemoved
		}
		components.CollisionEvent.Publish(ecs.World, components.CollisionEventData{
			Kind:    components.CollisionStopped,
			Entity1: pair.A,
			Entity2: pair.B,
			Flags:   flags,
		})
	}

	var started []components.ContactPair
	for pair := range current {
		if _, known := contacts.Active[pair]; !known {
			started = append(started, pair)
		}
	}
	sort.Slice(started, func(i, j int) bool {
		if started[i].A != started[j].A {
			return started[i].A < started[j].A
		}
		return started[i].B < started[j].B
	})
	for _, pair := range started {
		components.CollisionEvent.Publish(ecs.World, components.CollisionEventData{
			Kind:    components.CollisionStarted,
			Entity1: pair.A,
			Entity2: pair.B,
			Flags:   current[pair],
		})
		order = append(order, pair)
	}

	contacts.Active = current
	contacts.Order = order
}

// contactBetween reports whether two colliders touch and should produce
// events. Pairs need at least one side with events enabled and at least one
// dynamic body.
func contactBetween(a, b *donburi.Entry) (components.CollisionFlags, bool) {
	bodyA := components.Body.Get(a)
	bodyB := components.Body.Get(b)

	if !bodyA.ActiveEvents && !bodyB.ActiveEvents {
		return 0, false
	}
	if bodyA.Kind != components.BodyDynamic && bodyB.Kind != components.BodyDynamic {
		return 0, false
	}

	objA := components.Object.Get(a).Object
	objB := components.Object.Get(b).Object
	if objA == nil || objB == nil {
		return 0, false
	}

	if bodyA.Sensor || bodyB.Sensor {
		if !overlapping(objA, objB) {
			return 0, false
		}
		return components.FlagSensor, true
	}

	if !touching(objA, objB) {
		return 0, false
	}
	return 0, true
}

// overlapping is the strict test used for sensors: shapes must intersect.
func overlapping(a, b *resolv.Object) bool {
	if a.Shape == nil || b.Shape == nil {
		return gamemath.Overlaps(rectOf(a), rectOf(b))
	}
	return a.Shape.Intersection(0, 0, b.Shape) != nil
}

// contactSlop absorbs rounding left over from resolving a landing.
const contactSlop = 0.01

// touching also counts flush edges, which is where resting solids end up.
func touching(a, b *resolv.Object) bool {
	return gamemath.Touches(rectOf(a), rectOf(b), contactSlop)
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
