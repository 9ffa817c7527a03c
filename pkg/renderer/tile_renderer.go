package renderer

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene           *scene.Scene
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
	seed            uint64
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, config RenderConfig) *TileRenderer {
	return &TileRenderer{
		scene:           s,
		integrator:      integratorInst,
		width:           config.Width,
		height:          config.Height,
		samplesPerPixel: config.SamplesPerPixel,
		seed:            config.Seed,
	}
}

// RenderTile samples every pixel in the tile and writes the result to img. The sampler is
// reseeded per pixel from (seed, worker, x, y) so results do not depend on tile order.
func (tr *TileRenderer) RenderTile(tile *Tile, img *Image, sampler *core.RandomSampler, worker int) RenderStats {
	camera := tr.scene.Camera
	bounds := tile.Bounds
	stats := RenderStats{Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			sampler.Reseed(core.MixSeed(tr.seed, uint64(worker), uint64(i), uint64(j)))

			var ps PixelStats
			for s := 0; s < tr.samplesPerPixel; s++ {
				ray := camera.GetRay(i, j, tr.width, tr.height, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
			}

			img.SetPixel(i, j, vec3ToRGB(ps.GetColor()))
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
			stats.DroppedSamples += ps.Dropped
		}
	}

	return stats
}
