package tile

import (
	"image/color"
	"math/rand"
)

// jitter offsets each RGB channel independently by up to ±amount, clamped
// to [0,255]. It always consumes exactly three values from rng regardless
// of the input color, keeping the random stream aligned across palettes.
func jitter(rng *rand.Rand, c color.NRGBA, amount int) color.NRGBA {
	return color.NRGBA{
		jitterChannel(rng, c.R, amount),
		jitterChannel(rng, c.G, amount),
		jitterChannel(rng, c.B, amount),
		c.A,
	}
}

func jitterChannel(rng *rand.Rand, c uint8, amount int) uint8 {
	n := int(c) + rng.Intn(2*amount+1) - amount
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// intn returns a uniform value in the inclusive range [lo,hi].
func intn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
