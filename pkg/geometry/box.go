package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox creates an axis-aligned box with opposite corners a and b as a list of
// six parallelogram faces sharing one material
func NewBox(a, b core.Vec3, mat material.Material) (*List, error) {
	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	faces := []struct {
		corner core.Vec3
		u, v   core.Vec3
	}{
		{core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy},          // front
		{core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy}, // right
		{core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy}, // back
		{core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy},          // left
		{core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate()}, // top
		{core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz},          // bottom
	}

	sides := NewList()
	for _, f := range faces {
		quad, err := NewParallelogram(f.corner, f.u, f.v, mat)
		if err != nil {
			return nil, fmt.Errorf("box %v-%v: %w", a, b, err)
		}
		sides.Add(quad)
	}
	return sides, nil
}
