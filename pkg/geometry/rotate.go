package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Axis indexes a coordinate axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate turns the wrapped object about a coordinate axis through the origin
type Rotate struct {
	Object   Hittable
	Axis     Axis
	sinTheta float64
	cosTheta float64
}

// NewRotate wraps object, rotating it by angle degrees about axis
func NewRotate(object Hittable, axis Axis, angle float64) *Rotate {
	radians := angle * math.Pi / 180
	return &Rotate{
		Object:   object,
		Axis:     axis,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// NewRotateY is the common rotation about the vertical axis
func NewRotateY(object Hittable, angle float64) *Rotate {
	return NewRotate(object, AxisY, angle)
}

// planeAxes returns the two axes spanning the rotation plane, ordered so that
// a positive angle turns i toward j
func (r *Rotate) planeAxes() (i, j int) {
	switch r.Axis {
	case AxisX:
		return 1, 2
	case AxisY:
		return 2, 0
	default:
		return 0, 1
	}
}

// rotate applies the rotation with the given sine (negated for the inverse)
func (r *Rotate) rotate(v core.Vec3, sin float64) core.Vec3 {
	i, j := r.planeAxes()
	c := [3]float64{v.X, v.Y, v.Z}
	a, b := c[i], c[j]
	c[i] = r.cosTheta*a - sin*b
	c[j] = sin*a + r.cosTheta*b
	return core.NewVec3(c[0], c[1], c[2])
}

// toWorld maps an object-space vector into world space
func (r *Rotate) toWorld(v core.Vec3) core.Vec3 {
	return r.rotate(v, r.sinTheta)
}

// toObject maps a world-space vector into object space
func (r *Rotate) toObject(v core.Vec3) core.Vec3 {
	return r.rotate(v, -r.sinTheta)
}

// rotatedBox bounds the eight rotated corners of box
func (r *Rotate) rotatedBox(box core.AABB) core.AABB {
	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	return core.NewAABBFromPoints(corners...)
}

// Hit rotates the ray into object space and the resulting point and normal back.
// Rotation preserves angles, so the front-face flag carries over unchanged.
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox rotates the wrapped object's box for the same shutter interval
func (r *Rotate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return r.rotatedBox(box), true
}

func (r *Rotate) PDFValue(origin, direction core.Vec3) float64 {
	return lightPDFValue(r.Object, r.toObject(origin), r.toObject(direction))
}

func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(lightRandom(r.Object, r.toObject(origin), sampler))
}
