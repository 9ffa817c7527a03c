package scene

import (
	"errors"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// ErrMissingTexture is returned by presets that need an image texture when none is given
var ErrMissingTexture = errors.New("scene requires an image texture")

const perlinSeed = 7

// lookFrom13 is the narrow shot used by the texture showcase scenes
func lookFrom13(aspectRatio float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Time0:       0,
		Time1:       1,
	})
}

// NewCheckeredSpheresScene creates two large spheres sharing one checker texture
func NewCheckeredSpheresScene(aspectRatio float64, opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}
	return opts.newScene(lookFrom13(aspectRatio), objects, nil, NewSkyBackground(), 3)
}

// marbleSpheres returns a marble ground and a marble ball
func marbleSpheres() []geometry.Hittable {
	perlin := material.NewPerlin(core.NewRandomSampler(perlinSeed))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 4, 10, 7, 2))
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewPerlinSpheresScene creates the marble textured spheres
func NewPerlinSpheresScene(aspectRatio float64, opts Options) (*Scene, error) {
	return opts.newScene(lookFrom13(aspectRatio), marbleSpheres(), nil, NewSkyBackground(), 4)
}

// NewEarthScene wraps opts.EarthTexture around a sphere at the origin
func NewEarthScene(aspectRatio float64, opts Options) (*Scene, error) {
	if opts.EarthTexture == nil {
		return nil, ErrMissingTexture
	}

	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
	})
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(opts.EarthTexture))
	return opts.newScene(camera, []geometry.Hittable{globe}, nil, NewSkyBackground(), 5)
}
