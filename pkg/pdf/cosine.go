package pdf

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CosinePDF is the cosine-weighted hemisphere about a surface normal, cos(θ)/π
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine density around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns cos(θ)/π above the surface and 0 below it
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.RandomCosineDirection(sampler.Get2D()))
}
