package scene

import (
	"math"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMeshScene renders a loaded OBJ or PLY mesh in light grey.
// Without a mesh path a procedural icosahedron stands in.
func NewMeshScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)
	grey := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

	if opts.MeshPath == "" {
		vertices, faces := icosahedron(core.NewVec3(0, 0, 0), 3)
		b.Add(b.Mesh("icosahedron", vertices, faces, grey))
	} else {
		data, err := loaders.LoadMesh(opts.MeshPath)
		if err != nil {
			return nil, err
		}
		b.Add(b.Mesh(filepath.Base(opts.MeshPath), data.Vertices, data.Faces, grey))
	}

	camera := defaultCamera(planarCamera(), core.NewVec3(0, 0, 0), 1.0, 400, 80)
	return b.Build("mesh", camera, sky)
}

// icosahedron returns the 12 vertices and 20 faces of a regular icosahedron
// inscribed in a sphere of the given radius
func icosahedron(center core.Vec3, radius float64) ([]core.Vec3, []int) {
	phi := (1 + math.Sqrt(5)) / 2
	scale := radius / math.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Multiply(scale))
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return vertices, faces
}
