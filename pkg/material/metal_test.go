package material

import (
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}
	if !scatter.IsSpecular() {
		t.Error("Metal scattering should be specular")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.Scattered.Origin != hit.Point {
		t.Errorf("Expected scattered ray to start at %v, got %v", hit.Point, scatter.Scattered.Origin)
	}
}

func TestMetal_FuzzStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.3)
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	mirror := core.NewVec3(0, -1, 1).Normalize()

	sampler := core.NewRandomSampler(7)
	for i := 0; i < 500; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			continue
		}
		if scatter.Scattered.Direction.Subtract(mirror).Length() > 0.3+1e-9 {
			t.Fatalf("Fuzzed reflection %v is further than fuzz from mirror direction", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v points into the surface", scatter.Scattered.Direction)
		}
	}
}

func TestMetal_GrazingFuzzIsAbsorbed(t *testing.T) {
	// At grazing incidence with full fuzz, some perturbations point into the surface
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	sampler := core.NewRandomSampler(3)
	absorbed := 0
	for i := 0; i < 1000; i++ {
		if _, ok := metal.Scatter(rayIn, hit, sampler); !ok {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing fuzzed rays to be absorbed")
	}
}
