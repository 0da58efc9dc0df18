package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection.
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests.
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVHNode
	skipped   int // zero-area faces dropped at construction
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Each group of 3 indices forms a triangle. Faces with zero area are skipped
// and counted; a mesh left with no triangles is an error.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	numTriangles := len(faces) / 3
	triangles := make([]Shape, 0, numTriangles)
	skipped := 0

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of bounds (%d vertices)", i, idx, len(vertices))
			}
		}

		triangle, err := NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat)
		if errors.Is(err, ErrDegeneratePlanar) {
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, triangle)
	}

	bvh, err := NewBVH(triangles)
	if err != nil {
		return nil, fmt.Errorf("triangle mesh with %d faces (%d degenerate): %w", numTriangles, skipped, err)
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       bvh,
		skipped:   skipped,
	}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT, sampler)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() AABB {
	return tm.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// SkippedCount returns the number of degenerate faces dropped at construction
func (tm *TriangleMesh) SkippedCount() int {
	return tm.skipped
}
