package components

import "github.com/yohamta/donburi"

// BodyKind is how a collider takes part in the physics step.
type BodyKind int

const (
	// BodyFixed never moves on its own. Colliders without a rigid body are fixed.
	BodyFixed BodyKind = iota
	// BodyDynamic is moved by gravity unless its translation is locked.
	BodyDynamic
	// BodyKinematic is moved only by systems writing its position.
	BodyKinematic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	default:
		return "fixed"
	}
}

// LockedAxes restricts which degrees of freedom the physics step may change.
type LockedAxes uint8

const (
	LockTranslationX LockedAxes = 1 << iota
	LockTranslationY

	LockTranslation = LockTranslationX | LockTranslationY
)

// BodyData describes a collider's rigid body and event settings.
type BodyData struct {
	Kind         BodyKind
	Sensor       bool // detects overlap without pushing anything
	LockedAxes   LockedAxes
	ActiveEvents bool    // publish collision events for pairs involving this collider
	VelocityY    float64 // pixels per tick, positive is down
}

// Locked reports whether every axis in axes is locked.
func (b *BodyData) Locked(axes LockedAxes) bool {
	return b.LockedAxes&axes == axes
}

var Body = donburi.NewComponentType[BodyData]()
