package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

var (
	threeSpheresTarget = core.NewVec3(0, 0, -1)
	threeSpheresFrom   = core.NewVec3(-2, 2, 1)
)

// threeSpheresCamera looks at the middle sphere of the material showcase scenes
func threeSpheresCamera(aspectRatio float64, center core.Vec3, vfov, aperture float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:      center,
		LookAt:      threeSpheresTarget,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: aspectRatio,
		Aperture:    aperture,
		Time0:       0,
		Time1:       1,
	})
}

func groundSphere(mat material.Material) geometry.Hittable {
	return geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, mat)
}

// diffuseSpheres is one grey sphere resting on a grey ground
func diffuseSpheres() []geometry.Hittable {
	grey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	return []geometry.Hittable{
		geometry.NewSphere(threeSpheresTarget, 0.5, grey),
		groundSphere(grey),
	}
}

// metalSpheres flanks a diffuse sphere with a rough gold and a smoother silver sphere
func metalSpheres() []geometry.Hittable {
	return []geometry.Hittable{
		geometry.NewSphere(threeSpheresTarget, 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		groundSphere(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)),
	}
}

// glassSpheres replaces the silver sphere with a hollow glass bubble
func glassSpheres() []geometry.Hittable {
	glass := material.NewDielectric(1.5)
	return []geometry.Hittable{
		geometry.NewSphere(threeSpheresTarget, 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		groundSphere(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	}
}

// NewLambertianDiffuseScene creates a single diffuse sphere on a diffuse ground
func NewLambertianDiffuseScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, core.Vec3{}, 90, 0)
	return opts.newScene(camera, diffuseSpheres(), nil, NewSkyBackground(), 9)
}

// NewMetalScene creates diffuse, rough metal and polished metal spheres side by side
func NewMetalScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, core.Vec3{}, 90, 0)
	return opts.newScene(camera, metalSpheres(), nil, NewSkyBackground(), 10)
}

// NewDielectricScene creates diffuse, metal and hollow glass spheres side by side
func NewDielectricScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, core.Vec3{}, 90, 0)
	return opts.newScene(camera, glassSpheres(), nil, NewSkyBackground(), 11)
}

// NewWideAngleScene views the glass spheres from above and to the left with a 90° field of view
func NewWideAngleScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, threeSpheresFrom, 90, 0)
	return opts.newScene(camera, glassSpheres(), nil, NewSkyBackground(), 12)
}

// NewTelephotoScene is the wide angle shot zoomed to a 20° field of view
func NewTelephotoScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, threeSpheresFrom, 20, 0)
	return opts.newScene(camera, glassSpheres(), nil, NewSkyBackground(), 13)
}

// NewDefocusBlurScene focuses a wide aperture on the middle glass scene sphere
func NewDefocusBlurScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := threeSpheresCamera(aspectRatio, core.NewVec3(3, 3, 2), 20, 2.0)
	return opts.newScene(camera, glassSpheres(), nil, NewSkyBackground(), 14)
}
