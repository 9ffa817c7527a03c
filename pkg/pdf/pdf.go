// Package pdf holds the probability densities used to importance-sample scattered directions.
package pdf

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// PDF is a density over directions that can also draw directions from itself
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to the density
	Generate(sampler core.Sampler) core.Vec3
}

// Light is any object that can be sampled as seen from a point
type Light interface {
	// PDFValue returns the solid-angle density of hitting the object from origin along direction
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a (non-normalized) direction from origin toward a random point on the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}
