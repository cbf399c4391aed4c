package tilegen

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dungeondepths/tilegen/atlas"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// GenerateAll renders a tileset for every palette in the registry.
func (g *Generator) GenerateAll(ctx context.Context) error {
	return g.Generate(ctx, g.registry.Names()...)
}

// Generate renders tilesets for the named zones concurrently. A failing
// zone is logged and reported in the aggregated error but never stops the
// remaining zones.
func (g *Generator) Generate(ctx context.Context, zones ...string) error {
	if len(zones) == 0 {
		return nil
	}

	// Idempotent; repeated runs into the same directory are fine.
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return err
	}

	in, errc := g.zoneProducer(ctx, zones)
	errcList := []<-chan error{errc}

	workers := g.opts.Workers
	if workers > len(zones) {
		workers = len(zones)
	}
	for i := 0; i < workers; i++ {
		errcList = append(errcList, g.zoneWorker(ctx, in))
	}

	return waitForPipeline(errcList...)
}

func (g *Generator) zoneProducer(ctx context.Context, zones []string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, zone := range zones {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			select {
			case out <- zone:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc
}

func (g *Generator) zoneWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for zone := range in {
			if ctx.Err() != nil {
				return
			}
			if err := g.generateZone(zone); err != nil {
				g.logger.Error("zone generation failed",
					zap.String("zone", zone),
					zap.Error(err))
				errc <- fmt.Errorf("zone %q: %w", zone, err)
			}
		}
	}()
	return errc
}

func (g *Generator) generateZone(zone string) error {
	pal, err := g.registry.Lookup(zone)
	if err != nil {
		return err
	}

	a, err := atlas.Compose(pal, g.opts.BaseSeed)
	if err != nil {
		return err
	}

	paths, err := g.writeOutputs(zone, a)
	if err != nil {
		return err
	}

	g.logger.Info("tileset written",
		zap.String("zone", zone),
		zap.Strings("files", paths))
	return nil
}

func waitForPipeline(errcList ...<-chan error) error {
	var err error
	for e := range mergeErrors(errcList...) {
		err = multierr.Append(err, e)
	}
	return err
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for e := range c {
				out <- e
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
