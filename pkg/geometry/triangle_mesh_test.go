package geometry

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleMesh_Creation(t *testing.T) {
	// A unit quad as two triangles
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), // 0
		core.NewVec3(1, 0, 0), // 1
		core.NewVec3(1, 1, 0), // 2
		core.NewVec3(0, 1, 0), // 3
	}

	faces := []int{
		0, 1, 2, // first triangle
		0, 2, 3, // second triangle
	}

	mesh, err := NewTriangleMesh(vertices, faces, DummyMaterial{})
	require.NoError(t, err)
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, 0, mesh.SkippedCount())

	bbox := mesh.BoundingBox()
	assert.Equal(t, core.NewInterval(0, 1), bbox.X)
	assert.Equal(t, core.NewInterval(0, 1), bbox.Y)

	for _, p := range []core.Vec2{{X: 0.75, Y: 0.25}, {X: 0.25, Y: 0.75}} {
		ray := core.NewRay(core.NewVec3(p.X, p.Y, 1), core.NewVec3(0, 0, -1))
		hit, ok := mesh.Hit(ray, defaultRange, nil)
		require.True(t, ok, "expected hit at %v", p)
		assert.InDelta(t, 1.0, hit.T, 1e-12)
	}

	_, ok := mesh.Hit(core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)), defaultRange, nil)
	assert.False(t, ok)
}

func TestTriangleMesh_SkipsDegenerateFaces(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(2, 0, 0),
	}
	faces := []int{0, 1, 2, 0, 1, 3}

	mesh, err := NewTriangleMesh(vertices, faces, DummyMaterial{})
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
	assert.Equal(t, 1, mesh.SkippedCount())
}

func TestTriangleMesh_Errors(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0)}

	_, err := NewTriangleMesh(vertices, []int{0, 1}, DummyMaterial{})
	assert.Error(t, err, "face count not a multiple of 3")

	_, err = NewTriangleMesh(vertices, []int{0, 1, 7}, DummyMaterial{})
	assert.Error(t, err, "index out of range")

	_, err = NewTriangleMesh(vertices, []int{0, 1, 2}, DummyMaterial{})
	assert.ErrorIs(t, err, ErrEmptyBVH, "only degenerate faces")
}
