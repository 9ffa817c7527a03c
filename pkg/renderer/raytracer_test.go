package renderer

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// nopLogger discards all output
type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}

// panicMaterial fails every scatter
type panicMaterial struct{}

func (panicMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	panic("scatter exploded")
}
func (panicMaterial) ScatteringPDF(rayIn core.Ray, hit material.HitRecord, scattered core.Ray) float64 {
	return 0
}
func (panicMaterial) Emitted(rayIn core.Ray, hit material.HitRecord) core.Vec3 { return core.Vec3{} }

func testConfig(width, height, spp, depth, workers int) RenderConfig {
	return RenderConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
		MaxDepth:        depth,
		NumWorkers:      workers,
		Seed:            1234,
		TileSize:        8,
	}
}

// sphereScene puts a sphere of mat in front of a camera at the origin looking down -z
func sphereScene(t *testing.T, mat material.Material, background scene.Background) *scene.Scene {
	t.Helper()
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		VFov: 90, AspectRatio: 1,
	})
	s, err := scene.New(camera, []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat),
	}, nil, background, 1)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	return s
}

func render(t *testing.T, s *scene.Scene, config RenderConfig) *Image {
	t.Helper()
	rt, err := NewRaytracer(s, config, nopLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	img, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != config.Width*config.Height {
		t.Errorf("Expected %d pixels, got %d", config.Width*config.Height, stats.TotalPixels)
	}
	if stats.TotalSamples != stats.TotalPixels*config.SamplesPerPixel {
		t.Errorf("Expected %d samples, got %d", stats.TotalPixels*config.SamplesPerPixel, stats.TotalSamples)
	}
	if lum := CalculateAverageLuminance(img); stats.AverageLuminance != lum {
		t.Errorf("Expected luminance %f, got %f", lum, stats.AverageLuminance)
	}
	return img
}

func distanceToRed(p [3]uint8) float64 {
	dr := 255 - float64(p[0])
	dg := float64(p[1])
	db := float64(p[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func TestRender_RedSphere(t *testing.T) {
	config := testConfig(64, 32, 1, 1, 4)
	s, err := scene.Build("red-sphere", config.AspectRatio(), scene.Options{})
	if err != nil {
		t.Fatalf("Failed to build red-sphere: %v", err)
	}

	img := render(t, s, config)

	center := img.Pixel(config.Width/2, config.Height/2)
	corners := [][3]uint8{
		img.Pixel(0, 0),
		img.Pixel(config.Width-1, 0),
		img.Pixel(0, config.Height-1),
		img.Pixel(config.Width-1, config.Height-1),
	}

	for i, corner := range corners {
		if distanceToRed(center) >= distanceToRed(corner) {
			t.Errorf("Corner %d: expected center %v to be closer to red than background %v", i, center, corner)
		}
	}
	if center[0] <= center[2] {
		t.Errorf("Expected center pixel to be red dominant, got %v", center)
	}
}

func TestRender_Reproducible(t *testing.T) {
	s, err := scene.Build("random-spheres", 1.5, scene.Options{})
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 3} {
		config := testConfig(24, 16, 2, 4, workers)
		first := render(t, s, config)
		second := render(t, s, config)
		if !bytes.Equal(first.Pix, second.Pix) {
			t.Errorf("Expected identical output with %d workers", workers)
		}
	}
}

func TestRender_MaxDepthZero(t *testing.T) {
	// With no bounces each pixel is exactly the background or the light's emission
	glow := material.NewDiffuseLight(core.NewVec3(0.25, 0.25, 0.25))
	s := sphereScene(t, glow, scene.NewSolidBackground(core.NewVec3(0.64, 0.64, 0.64)))

	img := render(t, s, testConfig(20, 20, 1, 0, 2))

	light := vec3ToRGB(core.NewVec3(0.25, 0.25, 0.25))
	background := vec3ToRGB(core.NewVec3(0.64, 0.64, 0.64))
	seen := map[[3]uint8]int{}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixel(x, y)
			if p != light && p != background {
				t.Fatalf("Pixel (%d,%d): expected %v or %v, got %v", x, y, light, background, p)
			}
			seen[p]++
		}
	}
	if seen[light] == 0 || seen[background] == 0 {
		t.Errorf("Expected both the light and the background to be visible, got %v", seen)
	}
}

func TestRender_WorkerPanicAbortsRender(t *testing.T) {
	s := sphereScene(t, panicMaterial{}, scene.NewSolidBackground(core.NewVec3(1, 1, 1)))
	rt, err := NewRaytracer(s, testConfig(16, 16, 1, 2, 3), nopLogger{})
	if err != nil {
		t.Fatal(err)
	}

	img, _, err := rt.Render()
	if err == nil {
		t.Fatal("Expected render to fail")
	}
	if img != nil {
		t.Error("Expected no image from a failed render")
	}
	if !errors.Is(err, ErrWorkerFailed) {
		t.Errorf("Expected ErrWorkerFailed, got %v", err)
	}
	var workerErr *WorkerError
	if !errors.As(err, &workerErr) {
		t.Errorf("Expected a *WorkerError, got %T", err)
	}
}

func TestNewRaytracer_RejectsInvalidConfig(t *testing.T) {
	s := sphereScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), nil)
	config := testConfig(16, 16, 0, 2, 1)

	if _, err := NewRaytracer(s, config, nopLogger{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := NewRaytracer(nil, testConfig(16, 16, 1, 2, 1), nopLogger{}); err == nil {
		t.Error("Expected error for missing scene")
	}
}

func TestRender_MoreWorkersThanTiles(t *testing.T) {
	s := sphereScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), scene.NewSkyBackground())
	config := testConfig(8, 8, 1, 2, 16)

	rt, err := NewRaytracer(s, config, nopLogger{})
	if err != nil {
		t.Fatal(err)
	}
	_, stats, err := rt.Render()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Workers != 1 || stats.Tiles != 1 {
		t.Errorf("Expected 1 worker and 1 tile, got %d and %d", stats.Workers, stats.Tiles)
	}
}

func TestRender_OversizedTileCoversImage(t *testing.T) {
	s := sphereScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), scene.NewSkyBackground())
	config := testConfig(8, 8, 1, 2, 4)
	config.TileSize = math.MaxInt

	img := render(t, s, config)
	// The corner looks past the sphere at the sky
	if p := img.Pixel(0, 0); p == ([3]uint8{}) {
		t.Errorf("Expected sky in the corner, got %v", p)
	}
}
