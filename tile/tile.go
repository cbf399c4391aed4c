/*
Package tile synthesizes the individual 16 by 16 pixel tiles that make up a
dungeon tileset.

Every tile is drawn with a pseudo-random generator seeded exclusively from
the caller-supplied seed, so a (category, variation, palette, seed) tuple
always yields byte-identical pixels and tiles can be synthesized
concurrently with no shared state. The generators consume randomness
independently of palette values, which keeps the pattern of jittered and
cracked pixels identical across palettes for the same seed.
*/
package tile

import (
	"image"

	"github.com/dungeondepths/tilegen/palette"
)

// Size is the width and height of every tile in pixels.
const Size = 16

// Category identifies which family of patterns a tile belongs to.
type Category int

const (
	CategoryFloor Category = iota
	CategoryWall
	CategoryTransition
)

func (c Category) String() string {
	switch c {
	case CategoryWall:
		return "wall"
	case CategoryTransition:
		return "transition"
	default:
		return "floor"
	}
}

// Kind selects which transition tile to synthesize.
type Kind string

const (
	// WallBottom blends a wall face into the floor below it.
	WallBottom Kind = "wall_bottom"
	// FloorShadowNorth is a floor tile shaded by a wall above it.
	FloorShadowNorth Kind = "floor_shadow_n"
)

// Spec fully determines a tile's pixels for a given palette. Kind is only
// consulted for transition tiles, Variation for the other categories.
type Spec struct {
	Category  Category
	Variation int
	Kind      Kind
	Seed      int64
}

// Synthesize renders the tile described by s with the given palette.
func Synthesize(s Spec, pal palette.Palette) *image.NRGBA {
	switch s.Category {
	case CategoryWall:
		return Wall(s.Variation, pal, s.Seed)
	case CategoryTransition:
		return Transition(s.Kind, pal, s.Seed)
	default:
		return Floor(s.Variation, pal, s.Seed)
	}
}
