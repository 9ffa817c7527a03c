package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene to an RGB8 image using a pool of tile workers
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates config and creates a raytracer with a path tracing integrator
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("raytracer requires a scene")
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel and returns the finished image. On failure no image is returned.
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	start := time.Now()
	cfg := rt.config

	img := NewImage(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)
	numWorkers := min(cfg.NumWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d, %d spp, max depth %d, %d workers, %d tiles\n",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth, numWorkers, len(tiles))

	pool := NewWorkerPool(NewTileRenderer(rt.scene, rt.integrator, cfg), numWorkers, rt.logger)
	stats, err := pool.Run(tiles, img, cfg.Seed)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}
	if expected := cfg.Width * cfg.Height; stats.TotalPixels != expected {
		return nil, RenderStats{}, fmt.Errorf("%w: %d of %d pixels", ErrIncompleteRender, stats.TotalPixels, expected)
	}

	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	rt.logger.Printf("Render complete: %d pixels, %.1f samples/pixel, %d dropped samples, luminance %.3f in %v\n",
		stats.TotalPixels, stats.AverageSamples(), stats.DroppedSamples, stats.AverageLuminance, stats.Elapsed.Round(time.Millisecond))
	return img, stats, nil
}
