package components

import "github.com/yohamta/donburi"

// ContactPair is an unordered pair of colliding entities, stored with the
// lower entity first.
type ContactPair struct {
	A, B donburi.Entity
}

// NewContactPair orders a and b so that the same pair always compares equal.
func NewContactPair(a, b donburi.Entity) ContactPair {
	if b < a {
		a, b = b, a
	}
	return ContactPair{A: a, B: b}
}

// ContactsData holds the pairs that were touching at the end of the last
// collision pass, along with the flags reported when each contact started.
type ContactsData struct {
	Active map[ContactPair]CollisionFlags
	// Order keeps the pairs in the order they started so Stopped events are
	// published deterministically.
	Order []ContactPair
}

var Contacts = donburi.NewComponentType[ContactsData]()
