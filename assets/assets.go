package assets

import (
	"embed"
	"fmt"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// CollidersGroup is the Tiled object group whose rectangles become props.
const CollidersGroup = "Colliders"

// Prop is a rectangular collider placed in Tiled. X and Y are the top-left corner.
type Prop struct {
	Name                string
	X, Y, Width, Height float64
	Dynamic             bool
	Sensor              bool
	LockTranslation     bool
	CollisionEvents     bool
}

type Arena struct {
	Name   string
	Width  int
	Height int
	Props  []Prop
}

type ArenaLoader struct{}

func NewArenaLoader() *ArenaLoader {
	return &ArenaLoader{}
}

// LoadArena parses an embedded Tiled map into props.
func (l *ArenaLoader) LoadArena(path string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := &Arena{
		Name:   path,
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
		Props:  []Prop{},
	}

	for _, og := range arenaMap.ObjectGroups {
		if og.Name != CollidersGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("arena %s: object %q has no area", path, o.Name)
			}
			name := o.Name
			if name == "" {
				name = fmt.Sprintf("Prop %d", o.ID)
			}

			var dynamic bool
			switch body := strings.ToLower(o.Properties.GetString("body")); body {
			case "", "fixed":
			case "dynamic":
				dynamic = true
			default:
				return nil, fmt.Errorf("arena %s: object %q has unknown body %q", path, name, body)
			}

			arena.Props = append(arena.Props, Prop{
				Name:            name,
				X:               o.X,
				Y:               o.Y,
				Width:           o.Width,
				Height:          o.Height,
				Dynamic:         dynamic,
				Sensor:          o.Properties.GetBool("sensor"),
				LockTranslation: o.Properties.GetBool("lockTranslation"),
				CollisionEvents: o.Properties.GetBool("collisionEvents"),
			})
		}
	}

	return arena, nil
}

// MustLoadArena is LoadArena for the embedded maps that ship with the binary.
func (l *ArenaLoader) MustLoadArena(path string) *Arena {
	arena, err := l.LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}
