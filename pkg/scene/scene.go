package scene

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Background gives the radiance seen by rays that escape the scene
type Background interface {
	Value(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color for every escaping ray
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Value returns the constant color
func (b *SolidBackground) Value(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically from Bottom to Top by ray direction
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground is the white to light blue sky
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))
}

// Value interpolates on the y component of the normalized direction
func (b *GradientBackground) Value(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Accelerator selects the structure at the root of the world
type Accelerator int

const (
	// AccelBVH builds a bounding volume hierarchy over the objects
	AccelBVH Accelerator = iota
	// AccelList tests every object in turn
	AccelList
)

func (a Accelerator) String() string {
	switch a {
	case AccelBVH:
		return "bvh"
	case AccelList:
		return "list"
	}
	return fmt.Sprintf("Accelerator(%d)", int(a))
}

// Scene contains all the elements needed for rendering. It is read-only once built.
type Scene struct {
	Camera     *geometry.Camera
	World      geometry.Hittable      // BVH root or flat list
	Lights     *geometry.HittableList // Emitters used for importance sampling, may be empty
	Background Background
	BVH        *geometry.BVHNode // Nil when the world is a flat list
	objects    int
}

// New builds a scene over a BVH. Lights should also appear in objects so camera
// and bounce rays can see them; the light list only steers sampling.
func New(camera *geometry.Camera, objects []geometry.Hittable, lights []geometry.Hittable, background Background, seed uint64) (*Scene, error) {
	return NewWithAccelerator(camera, objects, lights, background, seed, AccelBVH)
}

// NewWithAccelerator is New with a choice of world root. Both roots report the same
// closest hit for every ray; the seed only matters for the BVH.
func NewWithAccelerator(camera *geometry.Camera, objects []geometry.Hittable, lights []geometry.Hittable, background Background, seed uint64, accel Accelerator) (*Scene, error) {
	if camera == nil {
		return nil, fmt.Errorf("scene requires a camera")
	}
	if background == nil {
		background = NewSolidBackground(core.Vec3{})
	}
	for i, light := range lights {
		if !geometry.CanSampleLight(light) {
			return nil, fmt.Errorf("light %d (%T): %w", i, light, geometry.ErrNotALight)
		}
	}

	s := &Scene{
		Camera:     camera,
		Lights:     geometry.NewHittableList(lights...),
		Background: background,
		objects:    len(objects),
	}

	switch accel {
	case AccelBVH:
		config := camera.Config()
		bvh, err := geometry.NewBVH(objects, config.Time0, config.Time1, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to build BVH: %w", err)
		}
		s.World, s.BVH = bvh, bvh
	case AccelList:
		if len(objects) == 0 {
			return nil, fmt.Errorf("failed to build object list: %w", geometry.ErrEmptyList)
		}
		s.World = geometry.NewHittableList(objects...)
	default:
		return nil, fmt.Errorf("unknown accelerator %v", accel)
	}
	return s, nil
}

// HasLights reports whether the scene has emitters to importance sample
func (s *Scene) HasLights() bool {
	return s.Lights != nil && s.Lights.Len() > 0
}

// ObjectCount returns the number of top-level objects the world was built from
func (s *Scene) ObjectCount() int {
	return s.objects
}

// AcceleratorStats summarizes the world root for logging
func (s *Scene) AcceleratorStats() string {
	if s.BVH != nil {
		return "BVH " + s.BVH.Stats()
	}
	return fmt.Sprintf("flat list of %d objects", s.objects)
}
