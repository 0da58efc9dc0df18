package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockShape for testing
type MockShape struct {
	boundingBox AABB
	hitFn       func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

func (m *MockShape) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func (m *MockShape) BoundingBox() AABB {
	return m.boundingBox
}

func neverHit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return nil, false
}

func TestNewBVH_Empty(t *testing.T) {
	_, err := NewBVH(nil)
	assert.ErrorIs(t, err, ErrEmptyBVH)

	_, err = NewBVHFromList(NewList())
	assert.ErrorIs(t, err, ErrEmptyBVH)
}

func TestNewBVH_SingleShapeAliasesBothChildren(t *testing.T) {
	shape := &MockShape{
		boundingBox: NewAABBFromPoints(core.Vec3{}, core.NewVec3(1, 1, 1)),
		hitFn:       neverHit,
	}

	bvh, err := NewBVH([]Shape{shape})
	require.NoError(t, err)

	assert.Same(t, shape, bvh.Left)
	assert.Same(t, shape, bvh.Right)

	stats := bvh.getStats()
	assert.Equal(t, 1, stats.totalNodes)
	assert.Equal(t, 1, stats.leafNodes)
	assert.Equal(t, 1, stats.totalShapes)
}

func TestNewBVH_DoesNotReorderInput(t *testing.T) {
	shapes := make([]Shape, 9)
	for i := range shapes {
		x := float64(len(shapes) - i) // descending along x
		shapes[i] = &MockShape{
			boundingBox: NewAABBFromPoints(core.NewVec3(x, 0, 0), core.NewVec3(x+0.5, 1, 1)),
			hitFn:       neverHit,
		}
	}
	original := make([]Shape, len(shapes))
	copy(original, shapes)

	bvh, err := NewBVH(shapes)
	require.NoError(t, err)
	assert.Equal(t, original, shapes)

	stats := bvh.getStats()
	assert.Equal(t, 9, stats.totalShapes)
	assert.LessOrEqual(t, stats.maxDepth, 4)
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	sampler := core.NewSeededSampler(42)

	var shapes []Shape
	for i := 0; i < 60; i++ {
		center := core.NewVec3(
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
		)
		radius := core.RandomInRange(sampler, 0.2, 1.5)
		s, err := NewSphere(center, radius, DummyMaterial{})
		require.NoError(t, err)
		shapes = append(shapes, s)
	}
	for i := 0; i < 20; i++ {
		corner := core.NewVec3(
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
		)
		q, err := NewParallelogram(corner, core.RandomUnitVector(sampler).Multiply(2), core.RandomUnitVector(sampler).Multiply(2), DummyMaterial{})
		require.NoError(t, err)
		shapes = append(shapes, q)
	}

	bvh, err := NewBVH(shapes)
	require.NoError(t, err)
	list := NewList(shapes...)

	rayT := core.NewInterval(1e-4, math.Inf(1))
	for i := 0; i < 2000; i++ {
		origin := core.RandomUnitVector(sampler).Multiply(30)
		target := core.NewVec3(
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
			core.RandomInRange(sampler, -10, 10),
		)
		ray := core.NewRay(origin, target.Subtract(origin))

		bvhHit, bvhOk := bvh.Hit(ray, rayT, nil)
		listHit, listOk := list.Hit(ray, rayT, nil)

		require.Equal(t, listOk, bvhOk, "ray %d hit disagreement", i)
		if listOk {
			require.InDelta(t, listHit.T, bvhHit.T, 1e-9, "ray %d", i)
			require.Equal(t, listHit.Point, bvhHit.Point)
		}
	}
}

func TestBVH_NarrowsIntervalForSecondChild(t *testing.T) {
	var rightIntervals []core.Interval

	left := &MockShape{
		boundingBox: NewAABBFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			return &material.HitRecord{T: 5}, true
		},
	}
	right := &MockShape{
		boundingBox: NewAABBFromPoints(core.NewVec3(2, 0, 0), core.NewVec3(3, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			rightIntervals = append(rightIntervals, rayT)
			return nil, false
		},
	}

	bvh, err := NewBVH([]Shape{left, right})
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(-5, 0.5, 0.5), core.NewVec3(1, 0, 0))
	hit, ok := bvh.Hit(ray, core.NewInterval(0.001, 100), nil)
	require.True(t, ok)
	assert.Equal(t, 5.0, hit.T)
	require.Len(t, rightIntervals, 1)
	assert.Equal(t, core.NewInterval(0.001, 5), rightIntervals[0])
}

func TestBVH_BoundingBoxMissSkipsChildren(t *testing.T) {
	called := false
	shape := &MockShape{
		boundingBox: NewAABBFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)),
		hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
			called = true
			return nil, false
		},
	}

	bvh, err := NewBVH([]Shape{shape, shape, shape})
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 0, 0))
	_, ok := bvh.Hit(ray, defaultRange, nil)
	assert.False(t, ok)
	assert.False(t, called)
}
