package components

import "github.com/yohamta/donburi"

// NameData is the display name used in collision logs and debug labels.
type NameData struct {
	Value string
}

var Name = donburi.NewComponentType[NameData]()

// NameOf resolves the display name of an entity. It reports false when the
// entity no longer exists or carries no name.
func NameOf(w donburi.World, entity donburi.Entity) (string, bool) {
	if !w.Valid(entity) {
		return "", false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(Name) {
		return "", false
	}
	return Name.Get(entry).Value, true
}
