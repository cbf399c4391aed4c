package tile

import (
	"testing"

	"github.com/dungeondepths/tilegen/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	reg := palette.Builtin()
	p, err := reg.Lookup(palette.DefaultZone)
	require.NoError(t, err)
	return p
}

// Palettes whose colors are separated by far more than any jitter
// magnitude, so a jittered or cracked pixel can never collide with the
// surrounding fill color.
func contrastPalettes() (palette.Palette, palette.Palette) {
	a := palette.Palette{
		palette.FloorBase:      {R: 200, G: 0, B: 0},
		palette.FloorLight:     {R: 0, G: 200, B: 0},
		palette.FloorDark:      {R: 0, G: 0, B: 200},
		palette.FloorAccent:    {R: 200, G: 200, B: 0},
		palette.FloorHighlight: {R: 0, G: 200, B: 200},
		palette.WallBase:       {R: 200, G: 0, B: 200},
		palette.WallLight:      {R: 200, G: 200, B: 200},
		palette.WallDark:       {R: 0, G: 0, B: 100},
		palette.WallMortar:     {R: 100, G: 0, B: 0},
		palette.WallTop:        {R: 0, G: 100, B: 0},
	}
	b := palette.Palette{
		palette.FloorBase:      {R: 0, G: 0, B: 255},
		palette.FloorLight:     {R: 255, G: 0, B: 0},
		palette.FloorDark:      {R: 0, G: 255, B: 0},
		palette.FloorAccent:    {R: 255, G: 255, B: 255},
		palette.FloorHighlight: {R: 255, G: 0, B: 255},
		palette.WallBase:       {R: 0, G: 255, B: 255},
		palette.WallLight:      {R: 255, G: 255, B: 0},
		palette.WallDark:       {R: 100, G: 100, B: 100},
		palette.WallMortar:     {R: 0, G: 100, B: 100},
		palette.WallTop:        {R: 100, G: 0, B: 100},
	}
	return a, b
}

func TestFloorDeterministic(t *testing.T) {
	pal := testPalette(t)
	for variation := 0; variation < 8; variation++ {
		for seed := int64(0); seed < 4; seed++ {
			a := Floor(variation, pal, seed)
			b := Floor(variation, pal, seed)
			assert.Equal(t, a.Pix, b.Pix, "variation %d seed %d", variation, seed)
		}
	}
}

func TestFloorVariation2Seed42Reproduces(t *testing.T) {
	pal := testPalette(t)
	a := Floor(2, pal, 42)
	b := Floor(2, pal, 42)
	require.Equal(t, a.Pix, b.Pix)
}

func TestWallDeterministic(t *testing.T) {
	pal := testPalette(t)
	for variation := 0; variation < 4; variation++ {
		a := Wall(variation, pal, 200)
		b := Wall(variation, pal, 200)
		assert.Equal(t, a.Pix, b.Pix, "variation %d", variation)
	}
}

func TestTransitionDeterministic(t *testing.T) {
	pal := testPalette(t)
	for _, kind := range []Kind{WallBottom, FloorShadowNorth} {
		a := Transition(kind, pal, 300)
		b := Transition(kind, pal, 300)
		assert.Equal(t, a.Pix, b.Pix, "kind %s", kind)
	}
}

func TestTileDimensions(t *testing.T) {
	pal := testPalette(t)
	specs := []Spec{
		{Category: CategoryFloor, Variation: 0, Seed: 1},
		{Category: CategoryFloor, Variation: 5, Seed: 2},
		{Category: CategoryFloor, Variation: 7, Seed: 3},
		{Category: CategoryWall, Variation: 0, Seed: 4},
		{Category: CategoryWall, Variation: 3, Seed: 5},
		{Category: CategoryTransition, Kind: WallBottom, Seed: 6},
	}
	for _, s := range specs {
		img := Synthesize(s, pal)
		b := img.Bounds()
		assert.Equal(t, Size, b.Dx(), "%+v", s)
		assert.Equal(t, Size, b.Dy(), "%+v", s)
	}
}

func TestFloorAndWallFullyOpaque(t *testing.T) {
	pal := testPalette(t)
	for variation := 0; variation < 8; variation++ {
		img := Floor(variation, pal, int64(variation))
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				require.EqualValues(t, 0xff, img.NRGBAAt(x, y).A, "floor variation %d at (%d,%d)", variation, x, y)
			}
		}
	}
	for variation := 0; variation < 4; variation++ {
		img := Wall(variation, pal, int64(variation))
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				require.EqualValues(t, 0xff, img.NRGBAAt(x, y).A, "wall variation %d at (%d,%d)", variation, x, y)
			}
		}
	}
}

func TestWallBottomAlphaRamp(t *testing.T) {
	pal := testPalette(t)
	img := Transition(WallBottom, pal, 300)

	// Wall face rows are fully opaque.
	for y := 0; y < wallRows; y++ {
		for x := 0; x < Size; x++ {
			assert.EqualValues(t, 0xff, img.NRGBAAt(x, y).A, "(%d,%d)", x, y)
		}
	}

	// The seam decays by a fixed step per row, identically across each row.
	want := []uint8{200, 170, 140, 110, 80}
	dark := pal[palette.FloorDark]
	for i, alpha := range want {
		y := wallRows + i
		for x := 0; x < Size; x++ {
			px := img.NRGBAAt(x, y)
			assert.Equal(t, alpha, px.A, "(%d,%d)", x, y)
			assert.Equal(t, dark.R, px.R, "(%d,%d)", x, y)
			assert.Equal(t, dark.G, px.G, "(%d,%d)", x, y)
			assert.Equal(t, dark.B, px.B, "(%d,%d)", x, y)
		}
	}
}

func TestFloorShadowNorthRamp(t *testing.T) {
	pal := testPalette(t)
	img := Transition(FloorShadowNorth, pal, 300)

	want := []uint8{150, 120, 90, 60, 30}
	for y, alpha := range want {
		for x := 0; x < Size; x++ {
			assert.Equal(t, alpha, img.NRGBAAt(x, y).A, "(%d,%d)", x, y)
		}
	}
	for y := shadowRows; y < Size; y++ {
		for x := 0; x < Size; x++ {
			assert.EqualValues(t, 0xff, img.NRGBAAt(x, y).A, "(%d,%d)", x, y)
		}
	}
}

func TestUnknownTransitionKindIsTransparent(t *testing.T) {
	img := Transition(Kind("doorway"), testPalette(t), 1)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			assert.Zero(t, img.NRGBAAt(x, y).A)
		}
	}
}

// maskFromDominant marks every pixel that differs from the tile's dominant
// color. For the crack variations the dominant color is the uniform base
// fill, so the mask is exactly the cracked and speckled pixels.
func maskFromDominant(img []uint8) [Size * Size]bool {
	type rgba [4]uint8
	counts := make(map[rgba]int)
	px := make([]rgba, 0, Size*Size)
	for i := 0; i < len(img); i += 4 {
		var c rgba
		copy(c[:], img[i:i+4])
		px = append(px, c)
		counts[c]++
	}

	var dominant rgba
	best := -1
	for c, n := range counts {
		if n > best {
			best, dominant = n, c
		}
	}

	var mask [Size * Size]bool
	for i, c := range px {
		mask[i] = c != dominant
	}
	return mask
}

func TestCrackPatternIndependentOfPalette(t *testing.T) {
	palA, palB := contrastPalettes()
	for seed := int64(0); seed < 16; seed++ {
		a := Floor(4, palA, seed)
		b := Floor(4, palB, seed)
		assert.Equal(t, maskFromDominant(a.Pix), maskFromDominant(b.Pix), "seed %d", seed)
	}
}

func TestSynthesizeDispatch(t *testing.T) {
	pal := testPalette(t)

	assert.Equal(t,
		Floor(3, pal, 45).Pix,
		Synthesize(Spec{Category: CategoryFloor, Variation: 3, Seed: 45}, pal).Pix)
	assert.Equal(t,
		Wall(2, pal, 202).Pix,
		Synthesize(Spec{Category: CategoryWall, Variation: 2, Seed: 202}, pal).Pix)
	assert.Equal(t,
		Transition(WallBottom, pal, 300).Pix,
		Synthesize(Spec{Category: CategoryTransition, Kind: WallBottom, Seed: 300}, pal).Pix)
}

func TestOutOfBoundsWritesAreDropped(t *testing.T) {
	c := newTransparentCanvas()
	before := append([]uint8(nil), c.img.Pix...)

	c.set(-1, 0, testPalette(t).Color(palette.FloorBase))
	c.set(0, -1, testPalette(t).Color(palette.FloorBase))
	c.set(Size, 0, testPalette(t).Color(palette.FloorBase))
	c.set(0, Size, testPalette(t).Color(palette.FloorBase))
	c.fillRect(-4, -4, Size+4, Size+4, testPalette(t).Color(palette.FloorBase))

	// The fill touched every in-bounds pixel but nothing outside.
	assert.Len(t, c.img.Pix, len(before))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			assert.EqualValues(t, 0xff, c.img.NRGBAAt(x, y).A)
		}
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "floor", CategoryFloor.String())
	assert.Equal(t, "wall", CategoryWall.String())
	assert.Equal(t, "transition", CategoryTransition.String())
}
