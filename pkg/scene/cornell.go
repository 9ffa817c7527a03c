package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

const cornellSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera(aspectRatio float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		Time0:       0,
		Time1:       1,
	})
}

// cornellWalls returns the five walls plus the ceiling light. The light is flipped so it
// faces down into the box.
func cornellWalls(light geometry.Hittable) []geometry.Hittable {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewFlipFace(geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green)), // Left
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),                                   // Right
		light,
		geometry.NewFlipFace(geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // Ceiling
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),                                 // Floor
		geometry.NewFlipFace(geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // Back
	}
}

// cornellBoxes returns the tall and short boxes, rotated and moved into place
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65))
	return tall, short
}

// cornellLight is the small ceiling panel of the classic box
func cornellLight() geometry.Hittable {
	return geometry.NewFlipFace(
		geometry.NewXZRect(213, 343, 227, 332, 554, material.NewDiffuseLight(core.NewVec3(15, 15, 15))))
}

// NewEmptyCornellScene creates the Cornell box walls and light with nothing inside
func NewEmptyCornellScene(aspectRatio float64, opts Options) (*Scene, error) {
	light := cornellLight()
	return opts.newScene(cornellCamera(aspectRatio), cornellWalls(light), []geometry.Hittable{light}, NewSolidBackground(core.Vec3{}), 15)
}

// NewCornellScene creates a classic Cornell box with a single area light
func NewCornellScene(aspectRatio float64, opts Options) (*Scene, error) {
	light := cornellLight()

	objects := cornellWalls(light)
	tall, short := cornellBoxes(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects, tall, short)

	return opts.newScene(cornellCamera(aspectRatio), objects, []geometry.Hittable{light}, NewSolidBackground(core.Vec3{}), 6)
}

// NewCornellSmokeScene replaces the Cornell boxes with participating media
func NewCornellSmokeScene(aspectRatio float64, opts Options) (*Scene, error) {
	light := geometry.NewFlipFace(
		geometry.NewXZRect(113, 443, 127, 432, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	objects := cornellWalls(light)
	tall, short := cornellBoxes(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	objects = append(objects,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return opts.newScene(cornellCamera(aspectRatio), objects, []geometry.Hittable{light}, NewSolidBackground(core.Vec3{}), 7)
}

// NewSimpleLightScene lights the marble spheres with a rectangle and a sphere
func NewSimpleLightScene(aspectRatio float64, opts Options) (*Scene, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Time0:       0,
		Time1:       1,
	})

	glow := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, glow)
	rectLight := geometry.NewXYRect(3, 5, 1, 3, -2, glow)

	objects := append(marbleSpheres(), sphereLight, rectLight)
	lights := []geometry.Hittable{sphereLight, rectLight}

	return opts.newScene(camera, objects, lights, NewSolidBackground(core.Vec3{}), 8)
}
