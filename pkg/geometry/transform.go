package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a wrapped shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	offsetRay := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := t.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped bounds moved by the offset
func (t *Translate) BoundingBox() AABB {
	return t.bbox
}

// RotateY rotates a wrapped shape about the Y axis
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound the eight rotated corners of the wrapped box
	box := object.BoundingBox()
	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.X.Min, box.X.Max} {
		for _, y := range []float64{box.Y.Min, box.Y.Max} {
			for _, z := range []float64{box.Z.Min, box.Z.Max} {
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}
	r.bbox = NewAABBFromPoints(corners...)

	return r
}

func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, intersects, and rotates point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRay(r.toObject(ray.Origin), r.toObject(ray.Direction))

	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the bounds of the rotated object
func (r *RotateY) BoundingBox() AABB {
	return r.bbox
}
