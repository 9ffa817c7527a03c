package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Plane identifies which axis-aligned plane a rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // normal +Z
	PlaneXZ              // normal +Y
	PlaneYZ              // normal +X
)

// axes returns the in-plane axes (a, b) and the normal axis
func (p Plane) axes() (a, b, normal int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Rect is an axis-aligned rectangle [A0,A1]x[B0,B1] at K along the plane's normal axis.
// Its outward normal is the positive normal axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material

	a, b, n int
	normal  core.Vec3
}

// NewXYRect creates a rectangle in the plane z=k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return newRect(PlaneXY, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y=k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return newRect(PlaneXZ, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x=k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return newRect(PlaneYZ, y0, y1, z0, z1, k, material)
}

func newRect(plane Plane, a0, a1, b0, b1, k float64, material material.Material) *Rect {
	a, b, n := plane.axes()
	r := &Rect{
		Plane:    plane,
		A0:       math.Min(a0, a1),
		A1:       math.Max(a0, a1),
		B0:       math.Min(b0, b1),
		B1:       math.Max(b0, b1),
		K:        k,
		Material: material,
		a:        a,
		b:        b,
		n:        n,
	}
	r.normal = r.point(0, 0, 1)
	return r
}

// point assembles a world-space point from in-plane coordinates (x, y) and plane offset k
func (r *Rect) point(x, y, k float64) core.Vec3 {
	var c [3]float64
	c[r.a] = x
	c[r.b] = y
	c[r.n] = k
	return core.NewVec3(c[0], c[1], c[2])
}

// Hit intersects the rectangle's plane then checks the in-plane bounds
func (r *Rect) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	d := ray.Direction.Axis(r.n)
	if d == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.n)) / d
	if !rayT.Surrounds(t) {
		return nil, false
	}

	p := ray.At(t)
	x := p.Axis(r.a)
	y := p.Axis(r.b)
	if x < r.A0 || x > r.A1 || y < r.B0 || y > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    p,
		Material: r.Material,
		UV:       core.NewVec2((x-r.A0)/(r.A1-r.A0), (y-r.B0)/(r.B1-r.B0)),
	}
	hitRecord.SetFaceNormal(ray, r.normal)

	return hitRecord, true
}

// BoundingBox returns the rectangle's box, padded along the normal axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	min := r.point(r.A0, r.B0, r.K)
	max := r.point(r.A1, r.B1, r.K)
	return core.NewAABB(min, max).PadToMinimums(), true
}

// Area returns the rectangle's surface area
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue converts the uniform area density 1/A into solid angle: dist² / (cos * A)
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), core.NewInterval(minHitDistance, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	area := r.Area()
	lengthSquared := direction.LengthSquared()
	distanceSquared := hit.T * hit.T * lengthSquared
	cosine := math.Abs(direction.Dot(hit.Normal)) / math.Sqrt(lengthSquared)
	if cosine < 1e-8 || area <= 0 {
		return 0
	}

	return distanceSquared / (cosine * area)
}

// Random returns the vector from origin to a uniformly chosen point on the rectangle
func (r *Rect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	u := sampler.Get2D()
	p := r.point(core.RandomRange(u.X, r.A0, r.A1), core.RandomRange(u.Y, r.B0, r.B1), r.K)
	return p.Subtract(origin)
}
