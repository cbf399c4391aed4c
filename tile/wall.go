package tile

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/dungeondepths/tilegen/palette"
)

// Standard brick geometry and noise magnitude per wall effect.
const (
	brickWidth  = 7
	brickHeight = 5

	wallBrickJitter     = 10
	wallEdgeJitter      = 5
	wallMossFillJitter  = 8
	wallCrackFillJitter = 12
	wallShadowJitter    = 5
	wallMossJitter      = 15
)

// Moss and crack colors are keyed to the dungeon rather than the zone, so
// they are the same across every palette.
var (
	mossColor  = color.NRGBA{35, 50, 35, 0xff}
	crackColor = color.NRGBA{30, 28, 35, 0xff}
)

// Wall synthesizes one wall tile. Variation 0 is the standard three-course
// brick wall, 1 adds moss patches over a finer brick pitch, 2 adds a crack
// walk, and 3 upward is a shadowed wall showing only the mortar grid.
func Wall(variation int, pal palette.Palette, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	c := newCanvas(pal.Color(palette.WallBase))

	switch variation {
	case 0:
		for row := 0; row < 3; row++ {
			y := row * brickHeight
			offset := 0
			if row%2 == 1 {
				offset = brickWidth / 2
			}
			// Start one brick off-screen so the offset rows still cover
			// the full width; the canvas clips the overhang.
			for col := -1; col < 3; col++ {
				x := col*brickWidth + offset
				c.fillRect(x+1, y+1, x+brickWidth-1, y+brickHeight-1, jitter(rng, pal.Color(palette.WallBase), wallBrickJitter))
				c.hline(x+1, x+brickWidth-2, y+1, jitter(rng, pal.Color(palette.WallLight), wallEdgeJitter))
				c.hline(x+1, x+brickWidth-1, y+brickHeight-1, jitter(rng, pal.Color(palette.WallDark), wallEdgeJitter))
				c.vline(x, y, y+brickHeight, pal.Color(palette.WallMortar))
			}
			c.hline(0, Size-1, y, pal.Color(palette.WallMortar))
		}

	case 1:
		fineBricks(c, rng, pal, wallMossFillJitter, true)
		for n := intn(rng, 2, 4); n > 0; n-- {
			mx, my := rng.Intn(Size-2), rng.Intn(Size-2)
			c.fillRect(mx, my, mx+2, my+2, jitter(rng, mossColor, wallMossJitter))
		}

	case 2:
		fineBricks(c, rng, pal, wallCrackFillJitter, false)
		crackWalk(c, rng, intn(rng, 4, 12), intn(rng, 4, 12), intn(rng, 4, 8), crackColor, 0)

	default:
		c.fillRect(0, 0, Size-1, Size-1, jitter(rng, pal.Color(palette.WallDark), wallShadowJitter))
		for y := 0; y < Size; y += brickHeight {
			c.hline(0, Size-1, y, pal.Color(palette.WallMortar))
			offset := 0
			if (y/brickHeight)%2 == 1 {
				offset = 4
			}
			for x := offset; x < Size; x += 8 {
				c.vline(x, y, y+brickHeight, pal.Color(palette.WallMortar))
			}
		}
	}

	return c.img
}

// fineBricks draws the tighter 8px-pitch brick courses used by the mossy
// and cracked variants, optionally with mortar lines.
func fineBricks(c canvas, rng *rand.Rand, pal palette.Palette, fillJitter int, mortar bool) {
	for y := 0; y < Size; y += brickHeight {
		offset := 0
		if (y/brickHeight)%2 == 1 {
			offset = 4
		}
		for x := -4; x < Size; x += 8 {
			bx := x + offset
			c.fillRect(bx+1, y+1, bx+6, y+4, jitter(rng, pal.Color(palette.WallBase), fillJitter))
			if mortar {
				c.hline(bx, bx+7, y, pal.Color(palette.WallMortar))
			}
		}
		if mortar {
			c.hline(0, Size-1, y, pal.Color(palette.WallMortar))
		}
	}
}
