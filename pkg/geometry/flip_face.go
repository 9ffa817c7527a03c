package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// FlipFace inverts the front-face flag of the wrapped object's hits.
// The stored normal is left untouched; it already faces the incoming ray.
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

func (f *FlipFace) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, rayT, sampler)
	if !ok {
		return nil, false
	}
	flipped := *hit
	flipped.FrontFace = !hit.FrontFace
	return &flipped, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return lightPDFValue(f.Object, origin, direction)
}

func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return lightRandom(f.Object, origin, sampler)
}
