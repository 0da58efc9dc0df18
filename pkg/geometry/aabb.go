package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// minThickness is the smallest extent an AABB keeps along any axis, so planar
// shapes aligned with an axis still produce a box with volume.
const minThickness = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z core.Interval
}

// EmptyAABB contains nothing; it is the identity for Union
var EmptyAABB = AABB{X: core.EmptyInterval, Y: core.EmptyInterval, Z: core.EmptyInterval}

// NewAABB creates a new AABB from per-axis intervals, padding thin axes
func NewAABB(x, y, z core.Interval) AABB {
	return AABB{X: padToMinimum(x), Y: padToMinimum(y), Z: padToMinimum(z)}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// Two points are treated as opposite corners.
func NewAABBFromPoints(points ...core.Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = core.NewVec3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = core.NewVec3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}

	return NewAABB(
		core.NewInterval(lo.X, hi.X),
		core.NewInterval(lo.Y, hi.Y),
		core.NewInterval(lo.Z, hi.Z),
	)
}

// padToMinimum widens a thin axis by minThickness on each side. Padding by the
// full amount on both sides keeps the result at least minThickness thick after
// rounding at any coordinate.
func padToMinimum(i core.Interval) core.Interval {
	if i.Size() < minThickness {
		return i.Expand(minThickness)
	}
	return i
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (b AABB) Axis(n int) core.Interval {
	switch n {
	case 1:
		return b.Y
	case 2:
		return b.Z
	}
	return b.X
}

// Hit tests if a ray intersects with this AABB using the slab method
func (b AABB) Hit(ray core.Ray, rayT core.Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		origin := ray.Origin.Index(axis)
		direction := ray.Direction.Index(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Size() <= 0 {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: core.IntervalUnion(b.X, other.X),
		Y: core.IntervalUnion(b.Y, other.Y),
		Z: core.IntervalUnion(b.Z, other.Z),
	}
}

// Translate returns the box moved by offset
func (b AABB) Translate(offset core.Vec3) AABB {
	return AABB{X: b.X.Shift(offset.X), Y: b.Y.Shift(offset.Y), Z: b.Z.Shift(offset.Z)}
}

// LongestAxis returns the index of the axis with the largest extent
func (b AABB) LongestAxis() int {
	if b.X.Size() > b.Y.Size() {
		if b.X.Size() > b.Z.Size() {
			return 0
		}
		return 2
	}
	if b.Y.Size() > b.Z.Size() {
		return 1
	}
	return 2
}

// Min returns the minimum corner
func (b AABB) Min() core.Vec3 {
	return core.NewVec3(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the maximum corner
func (b AABB) Max() core.Vec3 {
	return core.NewVec3(b.X.Max, b.Y.Max, b.Z.Max)
}
