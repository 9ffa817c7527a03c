package material

import (
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	tests := []struct {
		name      string
		emission  core.Vec3
		frontFace bool
		expected  core.Vec3
	}{
		{"Red emission front", core.NewVec3(1, 0, 0), true, core.NewVec3(1, 0, 0)},
		{"High intensity front", core.NewVec3(15, 15, 15), true, core.NewVec3(15, 15, 15)},
		{"Back face is dark", core.NewVec3(15, 15, 15), false, core.Vec3{}},
		{"Zero emission", core.Vec3{}, true, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewDiffuseLight(tt.emission)
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:     core.NewVec3(1, 0, 0),
				Normal:    core.NewVec3(-1, 0, 0),
				T:         1.0,
				FrontFace: tt.frontFace,
			}

			if _, scattered := light.Scatter(ray, hit, core.NewRandomSampler(42)); scattered {
				t.Error("Diffuse light should not scatter rays")
			}
			if got := light.Emitted(ray, hit); got != tt.expected {
				t.Errorf("Expected emission %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 1, 0)

	tests := []struct {
		name         string
		direction    core.Vec3
		expectFront  bool
		expectedNorm core.Vec3
	}{
		{"from outside", core.NewVec3(0, -1, 0), true, outward},
		{"from inside", core.NewVec3(0, 1, 0), false, core.NewVec3(0, -1, 0)},
		{"grazing counts as back", core.NewVec3(1, 0, 0), false, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)
			if hit.FrontFace != tt.expectFront {
				t.Errorf("Expected FrontFace %t, got %t", tt.expectFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNorm {
				t.Errorf("Expected normal %v, got %v", tt.expectedNorm, hit.Normal)
			}
		})
	}
}
