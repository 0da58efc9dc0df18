package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are immutable once built and may be shared by many containers.
type Shape interface {
	// Hit returns the nearest intersection with t inside rayT. The sampler is
	// only consumed by shapes with probabilistic boundaries, like participating media.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() AABB
}

var (
	// ErrInvalidRadius is returned for spheres with a non-positive radius
	ErrInvalidRadius = errors.New("sphere radius must be positive")
	// ErrDegeneratePlanar is returned for parallelograms and triangles with zero area
	ErrDegeneratePlanar = errors.New("planar shape has zero area")
	// ErrEmptyBVH is returned when building a hierarchy over no objects
	ErrEmptyBVH = errors.New("cannot build BVH over an empty object list")
)
