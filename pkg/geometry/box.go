package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 rectangles.
// The three faces on the minimum sides are flipped so every face's front is on the outside.
type Box struct {
	Min, Max core.Vec3
	Material material.Material
	sides    *HittableList
}

// NewBox creates a box spanning the two corners p0 and p1
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	min := core.NewVec3(math.Min(p0.X, p1.X), math.Min(p0.Y, p1.Y), math.Min(p0.Z, p1.Z))
	max := core.NewVec3(math.Max(p0.X, p1.X), math.Max(p0.Y, p1.Y), math.Max(p0.Z, p1.Z))

	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewFlipFace(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewFlipFace(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewFlipFace(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material)),
	)

	return &Box{Min: min, Max: max, Material: material, sides: sides}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, rayT, sampler)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max).PadToMinimums(), true
}

func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	return b.sides.PDFValue(origin, direction)
}

func (b *Box) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return b.sides.Random(origin, sampler)
}
