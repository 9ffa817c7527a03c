// Package geometry holds the scene objects rays can hit, the BVH that accelerates them and the camera that generates rays.
package geometry

import (
	"errors"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/pdf"
)

// minHitDistance keeps secondary rays from re-hitting the surface they left
const minHitDistance = 0.001

var (
	// ErrEmptyList is returned when building a BVH over no objects
	ErrEmptyList = errors.New("no objects to build BVH from")
	// ErrNoBoundingBox is returned when an object cannot be bounded
	ErrNoBoundingBox = errors.New("object has no bounding box")
	// ErrNotALight is returned when a light list member cannot be importance sampled
	ErrNotALight = errors.New("object cannot be sampled as a light")
)

// Hittable interface for objects that can be hit by rays.
// Implementations are immutable once built and safe to share across goroutines.
type Hittable interface {
	// Hit returns the closest intersection strictly inside rayT.
	// The sampler is only consulted by objects with stochastic surfaces (participating media).
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval [time0, time1]
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// LightHittable is a hittable that can also be importance-sampled as a light
type LightHittable interface {
	Hittable
	pdf.Light
}

// CanSampleLight reports whether obj gives consistent light samples and densities.
// Transforms and lists only qualify when everything they wrap does.
func CanSampleLight(obj Hittable) bool {
	switch o := obj.(type) {
	case *FlipFace:
		return CanSampleLight(o.Object)
	case *Translate:
		return CanSampleLight(o.Object)
	case *Rotate:
		return CanSampleLight(o.Object)
	case *HittableList:
		if o.Len() == 0 {
			return false
		}
		for _, member := range o.Objects {
			if !CanSampleLight(member) {
				return false
			}
		}
		return true
	}
	_, ok := obj.(pdf.Light)
	return ok
}

// lightPDFValue returns obj's light density, or 0 when obj cannot be sampled
func lightPDFValue(obj Hittable, origin, direction core.Vec3) float64 {
	if light, ok := obj.(pdf.Light); ok {
		return light.PDFValue(origin, direction)
	}
	return 0
}

// lightRandom returns a direction toward obj, or an arbitrary unit vector when obj cannot be sampled
func lightRandom(obj Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if light, ok := obj.(pdf.Light); ok {
		return light.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
