package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane_Hit(t *testing.T) {
	p := newPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, 2, 0))

	tests := []struct {
		name      string
		ray       core.Ray
		rayT      core.Interval
		expectHit bool
		expectedT float64
	}{
		{"from above", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)), defaultRange, true, 2},
		{"from below", core.NewRay(core.NewVec3(5, -1, 5), core.NewVec3(0, 2, 0)), defaultRange, true, 1},
		{"parallel", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(1, 0, 0)), defaultRange, false, 0},
		{"t on interval boundary is included", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)), core.NewInterval(0, 2), true, 2},
		{"behind origin", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 1, 0)), defaultRange, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := p.Hit(tt.ray, tt.rayT, nil)
			require.Equal(t, tt.expectHit, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.expectedT, hit.T, 1e-12)
			assert.LessOrEqual(t, tt.ray.Direction.Dot(hit.Normal), 0.0)
			assert.Equal(t, material.Invisible{}, hit.Material)
		})
	}
}

func TestPlane_BoundingBoxIsEmpty(t *testing.T) {
	p := newPlane(core.Vec3{}, core.NewVec3(0, 0, 1))
	box := p.BoundingBox()
	assert.True(t, box.X.IsEmpty())
	assert.False(t, box.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), core.UniverseInterval))
}
