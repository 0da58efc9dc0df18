package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List is a flat collection of shapes tested one after another
type List struct {
	Shapes []Shape
	bbox   AABB
}

// NewList creates a list holding the given shapes
func NewList(shapes ...Shape) *List {
	l := &List{bbox: EmptyAABB}
	for _, s := range shapes {
		l.Add(s)
	}
	return l
}

// Add appends a shape and grows the cached bounds
func (l *List) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit returns the closest hit among all shapes, shrinking the interval as hits are found
func (l *List) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member bounds
func (l *List) BoundingBox() AABB {
	return l.bbox
}
