package renderer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// WorkerPool renders a fixed set of tiles on a fixed number of goroutines. Each worker
// owns its tiles' pixels exclusively, so the shared image needs no locking.
type WorkerPool struct {
	numWorkers int
	renderer   *TileRenderer
	logger     core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, numWorkers int, logger core.Logger) *WorkerPool {
	return &WorkerPool{
		numWorkers: numWorkers,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run renders tiles into img and blocks until every worker is done. The first failing
// worker cancels the others and its error is returned; img must then be discarded.
func (wp *WorkerPool) Run(tiles []*Tile, img *Image, seed uint64) (RenderStats, error) {
	assignments := AssignTiles(tiles, wp.numWorkers)
	workerStats := make([]RenderStats, wp.numWorkers)

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < wp.numWorkers; w++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Worker: w, Err: fmt.Errorf("panic: %v", r)}
				}
			}()
			return wp.runWorker(ctx, w, assignments[w], img, seed, &workerStats[w])
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	total := RenderStats{Workers: wp.numWorkers}
	for _, s := range workerStats {
		total.Merge(s)
	}
	return total, nil
}

// runWorker is the body of a single worker
func (wp *WorkerPool) runWorker(ctx context.Context, worker int, tiles []*Tile, img *Image, seed uint64, stats *RenderStats) error {
	start := time.Now()
	sampler := core.NewRandomSampler(core.MixSeed(seed, uint64(worker)))

	for _, tile := range tiles {
		// Another worker failed; the render is abandoned
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.Merge(wp.renderer.RenderTile(tile, img, sampler, worker))
	}

	wp.logger.Printf("Worker %d finished %d tiles (%d pixels) in %v\n",
		worker, stats.Tiles, stats.TotalPixels, time.Since(start).Round(time.Millisecond))
	return nil
}
