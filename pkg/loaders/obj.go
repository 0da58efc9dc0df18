package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// LoadOBJ loads vertex positions and faces from a Wavefront OBJ file
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := openMesh(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ParseOBJ reads "v" and "f" statements; everything else (normals, texture
// coordinates, groups, materials) is ignored. Polygons are fan-triangulated and
// negative (relative) indices are resolved against the vertices read so far.
func ParseOBJ(r io.Reader) (*MeshData, error) {
	mesh := &MeshData{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			var xyz [3]float64
			for k := range xyz {
				value, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q", lineNum, fields[k+1])
				}
				xyz[k] = value
			}
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			polygon := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				index, err := parseOBJIndex(ref, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				polygon = append(polygon, index)
			}
			mesh.Faces = fan(mesh.Faces, polygon)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ: %w", err)
	}
	return mesh, nil
}

// parseOBJIndex converts a face reference ("7", "7/2", "7//3", "-1/...") to a zero-based vertex index
func parseOBJIndex(ref string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(ref, "/")
	n, err := strconv.Atoi(position)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid face index %q", ref)
	}

	index := n - 1
	if n < 0 {
		index = vertexCount + n
	}
	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", n, vertexCount)
	}
	return index, nil
}
