package tile

import (
	"image"
	"image/color"
	"math/rand"
)

// canvas wraps a tile raster and clamps every write to its bounds, so the
// pattern generators can never place a pixel outside the tile.
type canvas struct {
	img *image.NRGBA
}

func newCanvas(fill color.NRGBA) canvas {
	c := canvas{img: image.NewNRGBA(image.Rect(0, 0, Size, Size))}
	c.fillRect(0, 0, Size-1, Size-1, fill)
	return c
}

func newTransparentCanvas() canvas {
	return canvas{img: image.NewNRGBA(image.Rect(0, 0, Size, Size))}
}

func (c canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// fillRect fills the inclusive rectangle [x0,x1]x[y0,y1].
func (c canvas) fillRect(x0, y0, x1, y1 int, col color.NRGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, col)
		}
	}
}

func (c canvas) hline(x0, x1, y int, col color.NRGBA) {
	for x := x0; x <= x1; x++ {
		c.set(x, y, col)
	}
}

func (c canvas) vline(x, y0, y1 int, col color.NRGBA) {
	for y := y0; y <= y1; y++ {
		c.set(x, y, col)
	}
}

// crackWalk darkens pixels along a bounded random walk of the given number
// of steps. Each step moves by at most one pixel horizontally and zero or
// one pixels down. Steps that wander outside the tile draw nothing but
// still advance the walk. A positive jitter value offsets each drawn pixel
// color; zero draws the color exactly.
func crackWalk(c canvas, rng *rand.Rand, x, y, steps int, col color.NRGBA, jitterBy int) {
	for i := 0; i < steps; i++ {
		nx := x + rng.Intn(3) - 1
		ny := y + rng.Intn(2)
		if nx >= 0 && nx < Size && ny >= 0 && ny < Size {
			px := col
			if jitterBy > 0 {
				px = jitter(rng, col, jitterBy)
			}
			c.set(nx, ny, px)
		}
		x, y = nx, ny
	}
}
