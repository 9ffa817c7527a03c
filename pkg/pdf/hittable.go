package pdf

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// HittablePDF samples directions from a fixed origin toward a light
type HittablePDF struct {
	light  Light
	origin core.Vec3
}

// NewHittablePDF creates a density toward light as seen from origin
func NewHittablePDF(light Light, origin core.Vec3) *HittablePDF {
	return &HittablePDF{light: light, origin: origin}
}

// Value returns the light's solid-angle density along direction
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.light.PDFValue(p.origin, direction)
}

// Generate returns the normalized direction toward a random point on the light
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.light.Random(p.origin, sampler).Normalize()
}
