package tilegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dungeondepths/tilegen/atlas"
	"github.com/dungeondepths/tilegen/metadata"
	"github.com/dungeondepths/tilegen/palette"
	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

// indexedColors is the palette budget for the optional indexed export.
// Plenty for jittered 16x16 art while staying one PNG palette chunk.
const indexedColors = 64

// writeOutputs writes the atlas, preview, metadata and optional indexed
// atlas for one zone, returning the paths written.
func (g *Generator) writeOutputs(zone string, a *atlas.Atlas) ([]string, error) {
	base := zone + "-tileset"
	if zone == palette.DefaultZone {
		base = "tileset"
	}

	img := a.Image()
	var paths []string

	path, err := g.writePNG(base+".png", img)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	paths = append(paths, path)

	path, err = g.writePNG(base+"-preview.png", upscale(img, g.opts.PreviewScale))
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	paths = append(paths, path)

	if g.opts.Indexed {
		path, err = g.writePNG(base+"-indexed.png", indexed(img))
		if err != nil {
			return nil, fmt.Errorf("indexed: %w", err)
		}
		paths = append(paths, path)
	}

	path, err = g.writeMetadata(base+"-metadata.json", metadata.Describe(zone))
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	paths = append(paths, path)

	return paths, nil
}

// upscale returns a nearest-neighbor scaled copy, preserving hard pixel
// edges.
func upscale(src *image.NRGBA, factor int) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// indexed reduces the atlas to a single median-cut palette so it can be
// stored as a paletted PNG.
func indexed(src image.Image) *image.Paletted {
	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pm := image.NewPaletted(src.Bounds(), q.Quantize(make(color.Palette, 0, indexedColors), src))
	draw.Draw(pm, pm.Bounds(), src, src.Bounds().Min, draw.Src)
	return pm
}

func (g *Generator) writePNG(name string, img image.Image) (string, error) {
	f, path, err := g.createFile(name)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func (g *Generator) writeMetadata(name string, ts metadata.Tileset) (string, error) {
	b, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return "", err
	}
	b = append(b, '\n')

	f, path, err := g.createFile(name)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// createFile creates an output file, suffixing the name when the generator
// is configured to keep existing files.
func (g *Generator) createFile(name string) (*os.File, string, error) {
	path := filepath.Join(g.opts.OutputDir, name)
	if g.opts.KeepExisting {
		path = uniquePath(path)
	}
	f, err := os.Create(path)
	return f, path, err
}

// uniquePath returns path if nothing exists there, otherwise the first
// "-1", "-2", ... suffixed variant that is free.
func uniquePath(path string) string {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate
		}
	}
}
