package components

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionKind tells whether two colliders began or ceased touching.
type CollisionKind int

const (
	CollisionStarted CollisionKind = iota
	CollisionStopped
)

func (k CollisionKind) String() string {
	if k == CollisionStopped {
		return "stopped"
	}
	return "started"
}

// CollisionFlags carries extra detail about a collision event.
type CollisionFlags uint8

const (
	// FlagSensor is set when at least one participant is a sensor.
	FlagSensor CollisionFlags = 1 << iota
	// FlagRemoved is set on Stopped events caused by a participant being destroyed.
	FlagRemoved
)

func (f CollisionFlags) String() string {
	var parts []string
	if f&FlagSensor != 0 {
		parts = append(parts, "SENSOR")
	}
	if f&FlagRemoved != 0 {
		parts = append(parts, "REMOVED")
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " | ")
}

// CollisionEventData is a transient notification published by UpdateCollisions.
type CollisionEventData struct {
	Kind    CollisionKind
	Entity1 donburi.Entity
	Entity2 donburi.Entity
	Flags   CollisionFlags
}

func (e CollisionEventData) String() string {
	kind := "Started"
	if e.Kind == CollisionStopped {
		kind = "Stopped"
	}
	return fmt.Sprintf("%s(%v, %v, %s)", kind, e.Entity1, e.Entity2, e.Flags)
}

var CollisionEvent = events.NewEventType[CollisionEventData]()
