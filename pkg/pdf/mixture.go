package pdf

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// MixturePDF selects between two densities with equal probability
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF mixes p0 and p1 50/50
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns the average of both densities
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate flips a fair coin to pick which density supplies the direction
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
