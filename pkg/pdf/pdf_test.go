package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// coneLight behaves like a sphere of radius 1 centered 4 units up the Z axis
type coneLight struct {
	cosThetaMax float64
}

func newConeLight() coneLight {
	return coneLight{cosThetaMax: math.Sqrt(1 - 1.0/16.0)}
}

func (c coneLight) PDFValue(origin, direction core.Vec3) float64 {
	if direction.Normalize().Z < c.cosThetaMax {
		return 0
	}
	return 1 / (2 * math.Pi * (1 - c.cosThetaMax))
}

func (c coneLight) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleToSphere(1, 16, sampler.Get2D()).Multiply(3)
}

// integrate estimates ∫ p.Value(ω) dω over the sphere by uniform sampling
func integrate(p PDF, sampler core.Sampler, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += p.Value(core.SampleOnUnitSphere(sampler.Get2D()))
	}
	return sum / float64(n) * 4 * math.Pi
}

func TestDensitiesIntegrateToOne(t *testing.T) {
	normal := core.NewVec3(0, 1, 1).Normalize()

	tests := []struct {
		name string
		pdf  PDF
		tol  float64
	}{
		{"cosine", NewCosinePDF(normal), 0.02},
		{"sphere", NewSpherePDF(), 1e-9},
		{"light", NewHittablePDF(newConeLight(), core.Vec3{}), 0.05},
		{"mixture cosine+light", NewMixturePDF(NewCosinePDF(normal), NewHittablePDF(newConeLight(), core.Vec3{})), 0.05},
		{"mixture sphere+light", NewMixturePDF(NewSpherePDF(), NewHittablePDF(newConeLight(), core.Vec3{})), 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := core.NewRandomSampler(42)
			got := integrate(tt.pdf, sampler, 200000)
			if math.Abs(got-1) > tt.tol {
				t.Errorf("Expected density to integrate to ~1, got %f", got)
			}
		})
	}
}

func TestCosinePDF(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 0, 1))

	if got := p.Value(core.NewVec3(0, 0, 1)); math.Abs(got-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", got)
	}
	if got := p.Value(core.NewVec3(0, 0, -1)); got != 0 {
		t.Errorf("Expected 0 below the surface, got %f", got)
	}

	sampler := core.NewRandomSampler(1)
	for i := 0; i < 1000; i++ {
		d := p.Generate(sampler)
		if d.Z < 0 {
			t.Fatalf("Generated direction below the surface: %v", d)
		}
		if p.Value(d) <= 0 {
			t.Fatalf("Generated direction %v has zero density", d)
		}
	}
}

func TestHittablePDF_GenerateIsNormalized(t *testing.T) {
	p := NewHittablePDF(newConeLight(), core.Vec3{})
	sampler := core.NewRandomSampler(3)
	for i := 0; i < 100; i++ {
		d := p.Generate(sampler)
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected normalized direction, got length %f", d.Length())
		}
		if p.Value(d) <= 0 {
			t.Fatalf("Generated direction %v outside the light", d)
		}
	}
}

func TestMixturePDF_SelectsBothHalves(t *testing.T) {
	// Cosine around -Z and a light along +Z never overlap, so the source of each sample is visible
	m := NewMixturePDF(NewCosinePDF(core.NewVec3(0, 0, -1)), NewHittablePDF(newConeLight(), core.Vec3{}))
	sampler := core.NewRandomSampler(11)

	up := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if m.Generate(sampler).Z > 0 {
			up++
		}
	}
	frac := float64(up) / n
	if math.Abs(frac-0.5) > 0.03 {
		t.Errorf("Expected ~50%% of samples from the light, got %.3f", frac)
	}

	d := core.NewVec3(0, 0, 1)
	expected := 0.5*NewCosinePDF(core.NewVec3(0, 0, -1)).Value(d) + 0.5*newConeLight().PDFValue(core.Vec3{}, d)
	if got := m.Value(d); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected unweighted average %f, got %f", expected, got)
	}
}
