/*
Package atlas composes synthesized tiles into the fixed 8 by 4 tileset grid
consumed by the game's tile renderer.

The layout is a fixed policy: rows 0 and 1 hold floor variations, row 2
wall variations, and row 3 the wall-to-floor transition followed by special
floor tiles. Each slot gets a distinct seed from a per-region band so two
slots never share a random stream. The metadata package's index ranges
must stay in lock-step with this layout; their agreement is covered by a
test in this package.
*/
package atlas

import (
	"image"
	"image/draw"

	"github.com/dungeondepths/tilegen/palette"
	"github.com/dungeondepths/tilegen/tile"
)

const (
	Columns = 8
	Rows    = 4
	Slots   = Columns * Rows

	// Width and Height are the atlas raster dimensions in pixels.
	Width  = Columns * tile.Size
	Height = Rows * tile.Size
)

// Seed band constants, one per layout region. Rows 0 and 1 use disjoint
// bands on purpose so the two floor rows never repeat a seed; the special
// floor tiles in row 3 get a third band of their own.
const (
	floorRowSeed    = 42
	floorAltRowSeed = 100
	wallSeed        = 200
	wallAltSeed     = 250
	transitionSeed  = 300
	specialSeed     = 350
)

// Slot pairs a tile spec with its grid position.
type Slot struct {
	Column int
	Row    int
	Spec   tile.Spec
}

// Index returns the flattened atlas index of a grid cell.
func Index(col, row int) int {
	return row*Columns + col
}

// Layout returns the spec for all 32 slots in composition order. The base
// seed is added to every entry of the schedule, shifting the whole tileset
// to a different but equally deterministic pattern.
func Layout(baseSeed int64) []Slot {
	slots := make([]Slot, 0, Slots)

	// Rows 0-1: floor variations cycling 0-7, two seed bands.
	for col := 0; col < Columns; col++ {
		slots = append(slots, Slot{col, 0, tile.Spec{
			Category:  tile.CategoryFloor,
			Variation: col,
			Seed:      baseSeed + floorRowSeed + int64(col),
		}})
	}
	for col := 0; col < Columns; col++ {
		slots = append(slots, Slot{col, 1, tile.Spec{
			Category:  tile.CategoryFloor,
			Variation: col,
			Seed:      baseSeed + floorAltRowSeed + int64(col),
		}})
	}

	// Row 2: wall variations 0-3 repeated, two seed bands across the row.
	for col := 0; col < Columns; col++ {
		seed := baseSeed + wallSeed + int64(col)
		if col >= Columns/2 {
			seed = baseSeed + wallAltSeed + int64(col-Columns/2)
		}
		slots = append(slots, Slot{col, 2, tile.Spec{
			Category:  tile.CategoryWall,
			Variation: col % 4,
			Seed:      seed,
		}})
	}

	// Row 3: wall-to-floor transition, then special floor tiles.
	slots = append(slots, Slot{0, 3, tile.Spec{
		Category: tile.CategoryTransition,
		Kind:     tile.WallBottom,
		Seed:     baseSeed + transitionSeed,
	}})
	for col := 1; col < Columns; col++ {
		slots = append(slots, Slot{col, 3, tile.Spec{
			Category:  tile.CategoryFloor,
			Variation: (col + 2) % Columns,
			Seed:      baseSeed + specialSeed + int64(col),
		}})
	}

	return slots
}

// Atlas is the composed tileset raster for one palette.
type Atlas struct {
	img    *image.NRGBA
	filled [Slots]bool
}

// Compose synthesizes every slot of the fixed layout with the given
// palette. The palette is validated before any pixel is drawn; an
// incomplete palette returns an error and no partial atlas.
func Compose(pal palette.Palette, baseSeed int64) (*Atlas, error) {
	if err := pal.Validate(); err != nil {
		return nil, err
	}

	a := &Atlas{img: image.NewNRGBA(image.Rect(0, 0, Width, Height))}
	for _, s := range Layout(baseSeed) {
		t := tile.Synthesize(s.Spec, pal)
		r := image.Rect(s.Column*tile.Size, s.Row*tile.Size, (s.Column+1)*tile.Size, (s.Row+1)*tile.Size)
		draw.Draw(a.img, r, t, image.Point{}, draw.Src)
		a.filled[Index(s.Column, s.Row)] = true
	}

	return a, nil
}

// Image returns the composed raster.
func (a *Atlas) Image() *image.NRGBA {
	return a.img
}

// At returns the 16x16 subimage occupying a grid cell.
func (a *Atlas) At(col, row int) *image.NRGBA {
	r := image.Rect(col*tile.Size, row*tile.Size, (col+1)*tile.Size, (row+1)*tile.Size)
	return a.img.SubImage(r).(*image.NRGBA)
}

// Filled reports whether a grid cell has been composed.
func (a *Atlas) Filled(col, row int) bool {
	return a.filled[Index(col, row)]
}
