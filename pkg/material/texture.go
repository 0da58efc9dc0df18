package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point.
	// UV is used for image textures, point for solid (3D) textures.
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D grid of cubes
// with side length Scale, evaluated at the world-space hit point.
type CheckerTexture struct {
	invScale float64
	Odd      Texture
	Even     Texture
}

// NewCheckerTexture creates a checker pattern from two sub-textures
func NewCheckerTexture(scale float64, odd, even Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Odd: odd, Even: even}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(scale float64, odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks Even when the sum of the cell indices is even
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
