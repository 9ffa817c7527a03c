package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

const (
	randomSpheresSeed = 42
	randomSpheresGrid = 11
)

// randomSpheresCamera is the wide shot over the sphere field
func randomSpheresCamera(aspectRatio, aperture float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      aperture,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})
}

// NewRandomSpheresScene creates the classic field of small random spheres around three large ones
func NewRandomSpheresScene(aspectRatio float64, opts Options) (*Scene, error) {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	objects := randomSpheres(ground, false)
	return opts.newScene(randomSpheresCamera(aspectRatio, 0.1), objects, nil, NewSkyBackground(), randomSpheresSeed)
}

// NewMotionBlurScene is the random sphere field with diffuse spheres bouncing during the
// shutter interval
func NewMotionBlurScene(aspectRatio float64, opts Options) (*Scene, error) {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	objects := randomSpheres(ground, true)
	return opts.newScene(randomSpheresCamera(aspectRatio, 0.1), objects, nil, NewSkyBackground(), randomSpheresSeed+1)
}

// NewCheckeredFloorScene is the motion blur scene on a checkered ground
func NewCheckeredFloorScene(aspectRatio float64, opts Options) (*Scene, error) {
	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker))
	objects := randomSpheres(ground, true)
	return opts.newScene(randomSpheresCamera(aspectRatio, 0.1), objects, nil, NewSkyBackground(), randomSpheresSeed+2)
}

// randomSpheres lays out the small sphere grid from a fixed seed so every build is identical
func randomSpheres(ground geometry.Hittable, moving bool) []geometry.Hittable {
	rng := core.NewRandomSampler(randomSpheresSeed)
	objects := []geometry.Hittable{ground}
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -randomSpheresGrid; a < randomSpheresGrid; a++ {
		for b := -randomSpheresGrid; b < randomSpheresGrid; b++ {
			chooseMat := rng.Get1D()
			center := core.NewVec3(float64(a)+0.9*rng.Get1D(), 0.2, float64(b)+0.9*rng.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := rng.Get3D().MultiplyVec(rng.Get3D())
				mat := material.NewLambertian(albedo)
				if moving {
					center1 := center.Add(core.NewVec3(0, core.RandomRange(rng.Get1D(), 0, 0.5), 0))
					objects = append(objects, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, mat))
				} else {
					objects = append(objects, geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				c := rng.Get3D()
				albedo := core.NewVec3(core.RandomRange(c.X, 0.5, 1), core.RandomRange(c.Y, 0.5, 1), core.RandomRange(c.Z, 0.5, 1))
				fuzz := core.RandomRange(rng.Get1D(), 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return objects
}
