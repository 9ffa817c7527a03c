package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DefaultCheckerScale is the spatial frequency used by NewChecker
const DefaultCheckerScale = 10.0

// Checker is a 3D checker pattern alternating between two textures.
// The cell is picked by the sign of sin(sx)*sin(sy)*sin(sz), so it works on any surface without UVs.
type Checker struct {
	Odd   Texture
	Even  Texture
	Scale float64
}

// NewChecker creates a checker with the default scale
func NewChecker(odd, even Texture) *Checker {
	return NewScaledChecker(odd, even, DefaultCheckerScale)
}

// NewScaledChecker creates a checker with an explicit scale
func NewScaledChecker(odd, even Texture, scale float64) *Checker {
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

// NewCheckerColors is shorthand for a checker of two solid colors
func NewCheckerColors(odd, even core.Vec3) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks the odd or even texture at point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	p := point.Multiply(c.Scale)
	sines := math.Sin(p.X) * math.Sin(p.Y) * math.Sin(p.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
