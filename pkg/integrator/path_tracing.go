package integrator

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/pdf"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// minHitDistance keeps secondary rays from re-hitting the surface they left
const minHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with light importance sampling
type PathTracingIntegrator struct {
	MaxDepth int // Scatter bounces allowed after the primary hit
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a camera ray. The primary hit gets its own budget slot
// so MaxDepth counts bounces only.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, s, sampler, pt.MaxDepth+1)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := s.World.Hit(ray, core.NewInterval(minHitDistance, math.Inf(1)), sampler)
	if !isHit {
		return s.Background.Value(ray)
	}

	emitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		return emitted.Add(scatter.Attenuation.MultiplyVec(
			pt.rayColor(scatter.Scattered, s, sampler, depth-1)))
	}

	return emitted.Add(pt.diffuseColor(ray, hit, scatter, s, sampler, depth))
}

// diffuseColor draws a direction from the material density, mixed 50/50 with the lights
// when the scene has any, and weights the recursive estimate by the density ratio
func (pt *PathTracingIntegrator) diffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterResult, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	sampling := scatter.PDF
	if s.HasLights() {
		sampling = pdf.NewMixturePDF(pdf.NewHittablePDF(s.Lights, hit.Point), scatter.PDF)
	}

	direction := sampling.Generate(sampler)
	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)
	pdfValue := sampling.Value(direction)

	// Zero, negative or non-finite density contributes nothing
	if !(pdfValue > 0) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.rayColor(scattered, s, sampler, depth-1)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming)
}
