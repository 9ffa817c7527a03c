package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over a 256-cell lattice
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient table and permutations from sampler, so the
// same seed always produces the same noise
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.SampleOnUnitSphere(sampler.Get2D())
	}
	generatePerm(&p.permX, sampler)
	generatePerm(&p.permY, sampler)
	generatePerm(&p.permZ, sampler)
	return p
}

// generatePerm fills perm with a Fisher-Yates shuffle of 0..n-1
func generatePerm(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := int(sampler.Get1D() * float64(i+1))
		if target > i {
			target = i
		}
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smooth gradient noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, halving weight and doubling frequency each step
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterp is trilinear interpolation of gradient dot products with Hermite smoothing
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// NoiseTexture is a grey marble pattern: 0.5*(1 + sin(scale*p[axis] + turbSize*turbulence(p)))
type NoiseTexture struct {
	perlin         *Perlin
	Scale          float64
	TurbulenceSize float64
	Depth          int
	Axis           int
}

// NewNoiseTexture creates a marble texture whose grain runs along axis (0=X, 1=Y, 2=Z)
func NewNoiseTexture(perlin *Perlin, scale, turbulenceSize float64, depth, axis int) *NoiseTexture {
	return &NoiseTexture{
		perlin:         perlin,
		Scale:          scale,
		TurbulenceSize: turbulenceSize,
		Depth:          depth,
		Axis:           axis,
	}
}

// Evaluate returns a grey level in [0, 1]
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	turb := n.TurbulenceSize * n.perlin.Turbulence(point, n.Depth)
	phase := n.Scale*point.Axis(n.Axis) + turb
	g := 0.5 * (1 + math.Sin(phase))
	return core.NewVec3(g, g, g)
}
