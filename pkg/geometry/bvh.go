package geometry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either further nodes or the scene objects themselves; a node built
// over a single object points both children at it.
type BVHNode struct {
	Left  Shape
	Right Shape
	bbox  AABB
}

// NewBVH constructs a BVH over the given shapes.
// The input slice is copied and left untouched.
func NewBVH(shapes []Shape) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy), nil
}

// NewBVHFromList constructs a BVH over the members of a list
func NewBVHFromList(list *List) (*BVHNode, error) {
	node, err := NewBVH(list.Shapes)
	if err != nil {
		return nil, fmt.Errorf("bvh from list: %w", err)
	}
	return node, nil
}

// buildBVH recursively splits shapes at the median along the longest axis of their bounds.
// shapes must be non-empty and is reordered in place.
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := EmptyAABB
	for _, shape := range shapes {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	node := &BVHNode{bbox: boundingBox}

	switch len(shapes) {
	case 1:
		node.Left = shapes[0]
		node.Right = shapes[0]
	case 2:
		node.Left = shapes[0]
		node.Right = shapes[1]
	default:
		axis := boundingBox.LongestAxis()
		slices.SortStableFunc(shapes, func(a, b Shape) int {
			return cmp.Compare(a.BoundingBox().Axis(axis).Min, b.BoundingBox().Axis(axis).Min)
		})

		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid])
		node.Right = buildBVH(shapes[mid:])
	}

	return node
}

// Hit tests if a ray intersects any shape in the BVH
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	// Only a closer hit on the right can win
	closestSoFar := rayT.Max
	if hitLeft {
		closestSoFar = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (n *BVHNode) BoundingBox() AABB {
	return n.bbox
}

// getStats returns statistics about the BVH structure
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)

	if stats.leafNodes > 0 {
		stats.avgDepth = stats.avgDepth / float64(stats.leafNodes)
	}

	return stats
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	avgDepth    float64
	totalShapes int
}

// collectStats recursively collects statistics about the BVH.
// A leaf is a node whose children are scene objects; aliased children count once.
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	left, leftIsNode := n.Left.(*BVHNode)
	right, rightIsNode := n.Right.(*BVHNode)

	if !leftIsNode && !rightIsNode {
		stats.leafNodes++
		stats.avgDepth += float64(depth)
	}

	if leftIsNode {
		left.collectStats(depth+1, stats)
	} else {
		stats.totalShapes++
	}

	if rightIsNode {
		right.collectStats(depth+1, stats)
	} else if n.Right != n.Left {
		stats.totalShapes++
	}
}
