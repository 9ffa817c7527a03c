package core

import (
	"math"
	"testing"
)

func TestMixSeed_Deterministic(t *testing.T) {
	a := MixSeed(42, 1, 10, 20)
	b := MixSeed(42, 1, 10, 20)
	if a != b {
		t.Errorf("Expected identical seeds, got %d and %d", a, b)
	}

	seen := map[uint64]bool{}
	for worker := uint64(0); worker < 4; worker++ {
		for x := uint64(0); x < 16; x++ {
			for y := uint64(0); y < 16; y++ {
				s := MixSeed(42, worker, x, y)
				if seen[s] {
					t.Fatalf("Seed collision for worker=%d x=%d y=%d", worker, x, y)
				}
				seen[s] = true
			}
		}
	}

	// Argument order matters, so (x, y) and (y, x) are different streams
	if MixSeed(7, 1, 2) == MixSeed(7, 2, 1) {
		t.Error("Expected order-sensitive mixing")
	}
}

func TestRandomSampler_Reseed(t *testing.T) {
	sampler := NewRandomSampler(99)
	first := []float64{sampler.Get1D(), sampler.Get1D(), sampler.Get1D()}

	sampler.Reseed(99)
	for i, expected := range first {
		if got := sampler.Get1D(); got != expected {
			t.Errorf("Sample %d: expected %f after reseed, got %f", i, expected, got)
		}
	}

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Sample out of [0,1): %f", v)
		}
	}
}

func TestRandomCosineDirection(t *testing.T) {
	sampler := NewRandomSampler(42)
	normal := NewVec3(0.3, -0.8, 0.5).Normalize()

	const n = 20000
	sumCos := 0.0
	for i := 0; i < n; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Length())
		}
		cos := dir.Dot(normal)
		if cos < -1e-12 {
			t.Fatalf("Direction below hemisphere: cos=%f", cos)
		}
		sumCos += cos
	}

	// E[cos θ] under p = cos θ/π is 2/3
	mean := sumCos / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine ~0.667, got %f", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(5)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(6)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.LengthSquared() > 1+1e-12 {
			t.Fatalf("Point outside unit sphere: %v", p)
		}
	}
}

func TestSampleToSphere(t *testing.T) {
	sampler := NewRandomSampler(7)
	radius, distSq := 1.0, 16.0
	cosThetaMax := math.Sqrt(1 - radius*radius/distSq)
	for i := 0; i < 1000; i++ {
		d := SampleToSphere(radius, distSq, sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got %v", d)
		}
		if d.Z < cosThetaMax-1e-12 {
			t.Fatalf("Direction outside cone: z=%f, cosThetaMax=%f", d.Z, cosThetaMax)
		}
	}
}

func TestONB(t *testing.T) {
	for _, n := range []Vec3{NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0.2, 0.9, -0.3)} {
		onb := NewONB(n)
		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 || math.Abs(onb.U.Dot(onb.W)) > 1e-9 || math.Abs(onb.V.Dot(onb.W)) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal: %+v", n, onb)
		}
		if !vecNear(onb.W, n.Normalize(), 1e-9) {
			t.Errorf("W axis %v does not follow normal %v", onb.W, n)
		}
		if !vecNear(onb.Local(NewVec3(0, 0, 1)), onb.W, 1e-9) {
			t.Error("Local(0,0,1) should equal W")
		}
	}
}
