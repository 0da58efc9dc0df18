package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Parallelogram is a flat surface spanned by a corner and two edge vectors
type Parallelogram struct {
	planarFrame
	Material material.Material
	bbox     AABB
}

// NewParallelogram creates a new parallelogram from a corner point and two edge vectors
func NewParallelogram(corner, u, v core.Vec3, mat material.Material) (*Parallelogram, error) {
	frame, ok := newPlanarFrame(corner, u, v)
	if !ok {
		return nil, fmt.Errorf("parallelogram at %v: %w", corner, ErrDegeneratePlanar)
	}

	// Union of the boxes around both diagonals
	diagonal1 := NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Parallelogram{
		planarFrame: frame,
		Material:    mat,
		bbox:        diagonal1.Union(diagonal2),
	}, nil
}

// Hit tests if a ray intersects with the parallelogram
func (p *Parallelogram) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return p.hit(ray, rayT, p.Material, insideParallelogram)
}

func insideParallelogram(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}

// BoundingBox returns the axis-aligned bounding box for this parallelogram
func (p *Parallelogram) BoundingBox() AABB {
	return p.bbox
}
