package tile

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/dungeondepths/tilegen/palette"
)

const (
	// wallRows is how many rows of a wall_bottom tile render as wall face.
	wallRows = 11

	wallFaceJitter = 6

	// The floor seam is an integer alpha ramp: the first floor row starts
	// at seamStartAlpha and each following row loses seamAlphaStep,
	// floored at zero.
	seamStartAlpha = 200
	seamAlphaStep  = 30

	// North shadow ramp for floors directly below a wall.
	shadowStartAlpha = 150
	shadowAlphaStep  = 30
	shadowRows       = 5
)

// Transition synthesizes a tile blending two categories. An unknown kind
// yields a fully transparent tile.
func Transition(kind Kind, pal palette.Palette, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	c := newTransparentCanvas()

	switch kind {
	case WallBottom:
		for y := 0; y < wallRows; y++ {
			for x := 0; x < Size; x++ {
				c.set(x, y, jitter(rng, pal.Color(palette.WallBase), wallFaceJitter))
			}
		}
		c.hline(0, Size-1, 0, pal.Color(palette.WallMortar))
		c.hline(0, Size-1, 5, pal.Color(palette.WallMortar))
		c.hline(0, Size-1, wallRows-1, pal.Color(palette.WallDark))

		floorDark := pal[palette.FloorDark]
		for y := wallRows; y < Size; y++ {
			alpha := seamStartAlpha - seamAlphaStep*(y-wallRows)
			if alpha < 0 {
				alpha = 0
			}
			c.hline(0, Size-1, y, color.NRGBA{floorDark.R, floorDark.G, floorDark.B, uint8(alpha)})
		}

	case FloorShadowNorth:
		c.fillRect(0, 0, Size-1, Size-1, pal.Color(palette.FloorBase))
		floorDark := pal[palette.FloorDark]
		for y := 0; y < shadowRows; y++ {
			alpha := shadowStartAlpha - shadowAlphaStep*y
			if alpha < 0 {
				alpha = 0
			}
			c.hline(0, Size-1, y, color.NRGBA{floorDark.R, floorDark.G, floorDark.B, uint8(alpha)})
		}
	}

	return c.img
}
