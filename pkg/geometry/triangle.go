package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a triangle defined by three vertices
type Triangle struct {
	planarFrame
	V0, V1, V2 core.Vec3
	Material   material.Material
	bbox       AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) (*Triangle, error) {
	frame, ok := newPlanarFrame(v0, v1.Subtract(v0), v2.Subtract(v0))
	if !ok {
		return nil, fmt.Errorf("triangle %v %v %v: %w", v0, v1, v2, ErrDegeneratePlanar)
	}

	return &Triangle{
		planarFrame: frame,
		V0:          v0,
		V1:          v1,
		V2:          v2,
		Material:    mat,
		bbox:        NewAABBFromPoints(v0, v1, v2),
	}, nil
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return t.hit(ray, rayT, t.Material, insideTriangle)
}

func insideTriangle(alpha, beta float64) bool {
	return alpha >= 0 && beta >= 0 && alpha+beta <= 1
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() AABB {
	return t.bbox
}
