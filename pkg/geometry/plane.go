package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// plane is an infinite plane used to intersect planar shapes before their
// interior test. Its hits carry the Invisible material and it has no bounds.
type plane struct {
	normal core.Vec3 // unit normal
	d      float64   // plane equation constant: dot(normal, x) = d
}

func newPlane(point, normal core.Vec3) plane {
	n := normal.Normalize()
	return plane{normal: n, d: n.Dot(point)}
}

// Hit tests if a ray intersects with the plane
func (p plane) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.normal)

	// Parallel rays never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (p.d - ray.Origin.Dot(p.normal)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: material.Invisible{},
	}
	hitRecord.SetFaceNormal(ray, p.normal)

	return hitRecord, true
}

// BoundingBox is empty: an infinite plane cannot live in a hierarchy
func (p plane) BoundingBox() AABB {
	return EmptyAABB
}
