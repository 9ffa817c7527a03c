package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/pdf"
)

// HittableList is a flat collection of objects tested one after another
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit across all objects, shrinking the interval after each hit
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, rayT, sampler); ok {
			closest = hit
			rayT = rayT.WithMax(hit.T)
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of every object's box; false if the list is empty
// or any object is unbounded
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

// PDFValue averages the light densities of the members with equal weight
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * lightPDFValue(object, origin, direction)
	}
	return sum
}

// Random picks a member uniformly and returns a direction toward it
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.Objects)
	if n == 0 {
		return core.NewVec3(1, 0, 0)
	}
	i := int(sampler.Get1D() * float64(n))
	if i >= n {
		i = n - 1
	}
	return lightRandom(l.Objects[i], origin, sampler)
}

var _ pdf.Light = (*HittableList)(nil)
