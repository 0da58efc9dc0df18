// Package medium implements participating media: volumes that scatter light
// at random depths instead of at a surface.
package medium

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrInvalidDensity is returned for media with a non-positive density
var ErrInvalidDensity = errors.New("medium density must be positive")

// boundaryEpsilon separates the entry and exit hits on the boundary
const boundaryEpsilon = 1e-4

// ConstantMedium is a homogeneous volume filling a closed boundary shape.
// A ray entering it scatters after an exponentially distributed distance.
type ConstantMedium struct {
	Boundary      geometry.Shape
	negInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium whose phase function draws its albedo from a texture
func NewConstantMedium(boundary geometry.Shape, density float64, albedo material.Texture) (*ConstantMedium, error) {
	if !(density > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidDensity, density)
	}
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}, nil
}

// NewConstantMediumColor creates a medium with a uniform albedo
func NewConstantMediumColor(boundary geometry.Shape, density float64, albedo core.Vec3) (*ConstantMedium, error) {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit finds where the ray enters and leaves the boundary and samples a scatter
// distance in between. The boundary must be closed and convex along the ray.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+boundaryEpsilon, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	tEntry := math.Max(entry.T, rayT.Min)
	tExit := math.Min(exit.T, rayT.Max)
	if tEntry >= tExit {
		return nil, false
	}
	// Rays starting inside the medium
	tEntry = math.Max(tEntry, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEntry) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEntry + hitDistance/rayLength
	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: m.PhaseFunction,
	}
	// The direction is arbitrary; orienting it keeps the normal facing the ray
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox returns the bounds of the boundary shape
func (m *ConstantMedium) BoundingBox() geometry.AABB {
	return m.Boundary.BoundingBox()
}
