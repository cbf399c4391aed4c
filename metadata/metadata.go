/*
Package metadata describes the fixed atlas layout for the game's tile
renderer: tile geometry plus the half-open index range each category
occupies in the flattened atlas.

The ranges are a pure function of the layout in the atlas package. The two
must change in lock-step; a test in the atlas package checks every slot
against these ranges.
*/
package metadata

import (
	"github.com/dungeondepths/tilegen/atlas"
	"github.com/dungeondepths/tilegen/tile"
)

// Range is a half-open [Start,End) interval over flattened atlas indices
// (row*columns+column).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the flattened index i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Indices expands the range into the explicit index list the renderer
// consumes.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		out = append(out, i)
	}
	return out
}

// Ranges returns the category index ranges of the fixed layout: two rows
// of floors, one row of walls, and the transition row.
func Ranges() map[string]Range {
	return map[string]Range{
		"floor":      {0, 2 * atlas.Columns},
		"wall":       {2 * atlas.Columns, 3 * atlas.Columns},
		"transition": {3 * atlas.Columns, 4 * atlas.Columns},
	}
}

// Tileset is the JSON document written alongside each atlas image.
type Tileset struct {
	Name       string              `json:"name"`
	TileWidth  int                 `json:"tileWidth"`
	TileHeight int                 `json:"tileHeight"`
	Columns    int                 `json:"columns"`
	Rows       int                 `json:"rows"`
	Tiles      map[string]Category `json:"tiles"`
}

// Category lists the atlas indices of one tile category.
type Category struct {
	Indices     []int  `json:"indices"`
	Description string `json:"description"`
}

var descriptions = map[string]string{
	"floor":      "Floor tile variations",
	"wall":       "Wall tile variations",
	"transition": "Transition and special tiles",
}

// Describe builds the tileset descriptor for one named zone.
func Describe(name string) Tileset {
	tiles := make(map[string]Category, len(descriptions))
	for category, r := range Ranges() {
		tiles[category] = Category{
			Indices:     r.Indices(),
			Description: descriptions[category],
		}
	}
	return Tileset{
		Name:       name,
		TileWidth:  tile.Size,
		TileHeight: tile.Size,
		Columns:    atlas.Columns,
		Rows:       atlas.Rows,
		Tiles:      tiles,
	}
}
