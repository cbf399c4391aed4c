/*
Package palette defines the ten-role color palettes that drive a tileset's
visual theme, along with a registry of named zone palettes.

A palette maps every semantic role (floor base, wall mortar, and so on) to
an RGB triple. Completeness is enforced when a palette enters the registry
or before an atlas is composed; a missing role is always an error, never a
silent default.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// RGB is a single palette color with components in [0,255].
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color as an opaque color.NRGBA. Tiles are drawn on
// non-premultiplied rasters so that transition alpha survives PNG encoding
// untouched.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, 0xff}
}

// Role names one of the semantic colors a palette must define.
type Role string

const (
	FloorBase      Role = "floor_base"
	FloorLight     Role = "floor_light"
	FloorDark      Role = "floor_dark"
	FloorAccent    Role = "floor_accent"
	FloorHighlight Role = "floor_highlight"
	WallBase       Role = "wall_base"
	WallLight      Role = "wall_light"
	WallDark       Role = "wall_dark"
	WallMortar     Role = "wall_mortar"
	WallTop        Role = "wall_top"
)

// Roles lists every role a complete palette must define, in canonical order.
var Roles = [...]Role{
	FloorBase,
	FloorLight,
	FloorDark,
	FloorAccent,
	FloorHighlight,
	WallBase,
	WallLight,
	WallDark,
	WallMortar,
	WallTop,
}

var (
	// ErrNotFound is returned when looking up an unregistered palette.
	ErrNotFound = errors.New("palette: not found")

	// ErrIncomplete is returned when a palette is missing one or more roles.
	ErrIncomplete = errors.New("palette: incomplete")
)

// Palette maps every role to its color for one zone.
type Palette map[Role]RGB

// Validate reports every missing role at once, wrapping ErrIncomplete.
func (p Palette) Validate() error {
	var missing []string
	for _, r := range Roles {
		if _, ok := p[r]; !ok {
			missing = append(missing, string(r))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Color returns the opaque color for a role. The palette must have been
// validated; an absent role yields opaque black.
func (p Palette) Color(r Role) color.NRGBA {
	return p[r].NRGBA()
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	dup := make(Palette, len(p))
	for r, c := range p {
		dup[r] = c
	}
	return dup
}
