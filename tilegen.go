/*
Package tilegen procedurally generates the pixel-art dungeon tilesets used
by the depths renderer.

For each zone palette it composes a 128 by 64 atlas of 16 by 16 tiles and
writes the atlas PNG, a 4x nearest-neighbor preview, and a JSON descriptor
mapping tile categories to atlas indices. Generation is fully deterministic
for a given base seed, so tilesets can be regenerated at any time without
diffs.
*/
package tilegen

import (
	"github.com/dungeondepths/tilegen/palette"
	"go.uber.org/zap"
)

// Options control output naming and encoding.
type Options struct {
	// OutputDir receives every generated file. It is created if missing.
	OutputDir string

	// BaseSeed shifts the whole seed schedule; zero reproduces the
	// reference tilesets.
	BaseSeed int64

	// Workers is the number of concurrent zone workers.
	Workers int

	// PreviewScale is the nearest-neighbor upscale factor for previews.
	PreviewScale int

	// Indexed also writes a median-cut paletted copy of each atlas.
	Indexed bool

	// KeepExisting never overwrites: colliding filenames get a numeric
	// suffix instead.
	KeepExisting bool
}

// Generator renders a tileset atlas for each requested zone palette and
// writes the results to the output directory.
type Generator struct {
	registry *palette.Registry
	logger   *zap.Logger
	opts     Options
}

// New returns a Generator over the given palette registry.
func New(registry *palette.Registry, logger *zap.Logger, opts Options) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.PreviewScale <= 0 {
		opts.PreviewScale = 4
	}
	return &Generator{
		registry: registry,
		logger:   logger,
		opts:     opts,
	}
}
