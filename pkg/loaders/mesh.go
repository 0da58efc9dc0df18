package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MeshData contains raw triangle mesh data
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Vertex indices, three per triangle
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// LoadMesh loads a triangle mesh, choosing the parser by file extension (.obj or .ply)
func LoadMesh(filename string) (*MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		return LoadOBJ(filename)
	case ".ply":
		return LoadPLY(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
}

func openMesh(filename string) (*os.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	return file, nil
}

// fan appends a polygon's triangulation around its first vertex
func fan(faces []int, polygon []int) []int {
	for k := 1; k+1 < len(polygon); k++ {
		faces = append(faces, polygon[0], polygon[k], polygon[k+1])
	}
	return faces
}
