package pdf

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// SpherePDF is uniform over all directions, 1/(4π)
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere density
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform unit direction
func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}
