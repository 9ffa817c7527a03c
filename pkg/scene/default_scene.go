package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// NewRedSphereScene creates a single red diffuse sphere in front of the camera under a sky
func NewRedSphereScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: aspectRatio,
	})

	red := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red),
	}

	return opts.newScene(camera, objects, nil, NewSkyBackground(), 1)
}
