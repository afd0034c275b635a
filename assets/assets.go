// Package assets loads Tiled maps into y-up level geometry for the physics world.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

// Object groups read from a map. Any other group is ignored.
const (
	GroupSolids    = "Solids"
	GroupPlatforms = "Platforms"
	GroupSpawns    = "Spawns"
)

// Object classes that override the group default.
const (
	ClassSolid    = "solid"
	ClassPlatform = "platform"
	ClassOneWay   = "oneway"
)

// Rect is a box in y-up world coordinates with X/Y at its lower-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

type Surface struct {
	Rect
	OneWay bool
	Ground bool // "ground" property, tags a one-way surface as ground
}

type PlayerSpawn struct {
	X, Y       float64 // feet position, y-up
	SpawnIndex int
}

// Center returns the body center for a collider of the given height.
func (s PlayerSpawn) Center(height float64) math.Vec2 {
	return math.Vec2{X: s.X, Y: s.Y + height/2}
}

type Level struct {
	Name         string
	Width        int
	Height       int
	Surfaces     []Surface
	PlayerSpawns []PlayerSpawn
}

// LevelNames lists the embedded .tmx files in load order.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, path.Join("levels", entry.Name()))
		}
	}
	return names, nil
}

func MustLoadLevels() []Level {
	names, err := LevelNames()
	if err != nil {
		panic(err)
	}

	var levels []Level
	for _, name := range names {
		level, err := LoadLevel(assetFS, name)
		if err != nil {
			panic(err)
		}
		levels = append(levels, *level)
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

// LoadLevelFile loads a map from disk, resolving references relative to its directory.
func LoadLevelFile(p string) (*Level, error) {
	return LoadLevel(os.DirFS(filepath.Dir(p)), filepath.Base(p))
}

// LoadLevel parses a Tiled map from fsys. Tiled is y-down; every rectangle is
// flipped once here so the rest of the game works in y-up coordinates.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	level := &Level{
		Name:   name,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	mapHeight := float64(level.Height)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids, GroupPlatforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					log.Printf("Warning: %s: skipping empty object %d in %s", name, o.ID, og.Name)
					continue
				}
				oneWay, ok := classify(og.Name, objectClass(o))
				if !ok {
					log.Printf("Warning: %s: unknown class %q on object %d", name, objectClass(o), o.ID)
					continue
				}
				level.Surfaces = append(level.Surfaces, Surface{
					Rect: Rect{
						X:      o.X,
						Y:      mapHeight - (o.Y + o.Height),
						Width:  o.Width,
						Height: o.Height,
					},
					OneWay: oneWay,
					Ground: o.Properties.GetBool("ground"),
				})
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X:          o.X,
					Y:          mapHeight - o.Y,
					SpawnIndex: o.Properties.GetInt("spawnIndex"),
				})
			}
			sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].SpawnIndex < level.PlayerSpawns[j].SpawnIndex
			})
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no objects in %s group", name, GroupSpawns)
	}

	return level, nil
}

// objectClass returns the Tiled class, falling back to the older type attribute.
func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX files written before Tiled 1.9 use type=
}

func classify(group, class string) (oneWay, ok bool) {
	switch class {
	case "":
		return group == GroupPlatforms, true
	case ClassSolid:
		return false, true
	case ClassPlatform, ClassOneWay:
		return true, true
	}
	return false, false
}
