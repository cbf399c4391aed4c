package tile

import (
	"image"
	"math/rand"

	"github.com/dungeondepths/tilegen/palette"
)

// Noise magnitude per floor effect.
const (
	floorBrickJitter     = 6
	floorMortarJitter    = 4
	floorCrackFillJitter = 8
	floorCrackJitter     = 3
	floorCheckerJitter   = 4
	floorSpeckJitter     = 10
)

// Floor synthesizes one floor tile. Variations 0-3 draw a brick-offset
// stone grid, 4-5 a near-uniform base with crack walks, and 6 upward a
// subtle checkerboard of base and accent. Every variation finishes with a
// speckle pass of single-pixel highlights and shadows.
func Floor(variation int, pal palette.Palette, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	c := newCanvas(pal.Color(palette.FloorBase))

	switch {
	case variation < 4:
		// 4x4 stone cells, odd rows shifted by 2px for a brick look.
		for y := 0; y < Size; y += 4 {
			offset := 0
			if (y/4)%2 == 1 {
				offset = 2
			}
			for x := 0; x < Size; x += 4 {
				xp := (x + offset) % Size
				c.fillRect(xp, y, xp+3, y+3, jitter(rng, pal.Color(palette.FloorBase), floorBrickJitter))
				if rng.Float64() > 0.7 {
					c.set(xp, y, jitter(rng, pal.Color(palette.FloorDark), floorMortarJitter))
				}
			}
		}

	case variation < 6:
		c.fillRect(0, 0, Size-1, Size-1, jitter(rng, pal.Color(palette.FloorBase), floorCrackFillJitter))
		for n := intn(rng, 1, 3); n > 0; n-- {
			crackWalk(c, rng, rng.Intn(Size), rng.Intn(Size), intn(rng, 3, 7), pal.Color(palette.FloorDark), floorCrackJitter)
		}

	default:
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				role := palette.FloorBase
				if (x+y)%8 >= 4 {
					role = palette.FloorAccent
				}
				c.set(x, y, jitter(rng, pal.Color(role), floorCheckerJitter))
			}
		}
	}

	// Speckle pass shared by every variation.
	for n := intn(rng, 5, 12); n > 0; n-- {
		px, py := rng.Intn(Size), rng.Intn(Size)
		role := palette.FloorDark
		if rng.Float64() > 0.5 {
			role = palette.FloorLight
		}
		c.set(px, py, jitter(rng, pal.Color(role), floorSpeckJitter))
	}

	return c.img
}
