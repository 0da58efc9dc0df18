package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is a declared element block (vertex, face, or anything else) and its properties
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// LoadPLY loads vertex positions and faces from a PLY file
func LoadPLY(filename string) (*MeshData, error) {
	file, err := openMesh(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh, err := ParsePLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ParsePLY reads an ASCII or binary PLY stream. Only vertex x/y/z and the face
// vertex index list are kept; other properties and elements are skipped.
// Polygonal faces are fan-triangulated.
func ParsePLY(r io.Reader) (*MeshData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		values = &asciiPLYReader{reader: reader}
	case "binary_little_endian":
		values = &binaryPLYReader{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryPLYReader{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	mesh := &MeshData{}
	for _, element := range header.Elements {
		for n := 0; n < element.Count; n++ {
			if err := readPLYElement(values, element, mesh); err != nil {
				return nil, fmt.Errorf("failed to read %s %d: %w", element.Name, n, err)
			}
		}
	}

	for _, index := range mesh.Faces {
		if index < 0 || index >= len(mesh.Vertices) {
			return nil, fmt.Errorf("face index %d out of range (%d vertices)", index, len(mesh.Vertices))
		}
	}
	return mesh, nil
}

// readPLYElement reads one instance of element and appends what it carries to mesh
func readPLYElement(values plyValueReader, element PLYElement, mesh *MeshData) error {
	var position [3]float64
	var polygon []int

	for _, prop := range element.Properties {
		if prop.IsList {
			count, err := values.scalar(prop.ListType)
			if err != nil {
				return err
			}
			for k := 0; k < int(count); k++ {
				v, err := values.scalar(prop.DataType)
				if err != nil {
					return err
				}
				if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
					polygon = append(polygon, int(v))
				}
			}
			continue
		}

		v, err := values.scalar(prop.Type)
		if err != nil {
			return err
		}
		if element.Name == "vertex" {
			switch prop.Name {
			case "x":
				position[0] = v
			case "y":
				position[1] = v
			case "z":
				position[2] = v
			}
		}
	}

	switch element.Name {
	case "vertex":
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(position[0], position[1], position[2]))
	case "face":
		mesh.Faces = fan(mesh.Faces, polygon)
	}
	return nil
}

// parsePLYHeader parses the PLY header, leaving reader positioned at the first data byte
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("unterminated header: %w", err)
		}
		line := strings.TrimSpace(raw)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			return header, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element definition: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element: %q", line)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Properties = append(current.Properties, prop)
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	return prop, nil
}

// plyValueReader reads one scalar of a PLY type from the body
type plyValueReader interface {
	scalar(dataType string) (float64, error)
}

type asciiPLYReader struct {
	reader *bufio.Reader
}

func (a *asciiPLYReader) scalar(dataType string) (float64, error) {
	token, err := a.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, token)
	}
	return v, nil
}

// token returns the next whitespace-separated word
func (a *asciiPLYReader) token() (string, error) {
	var sb strings.Builder
	for {
		b, err := a.reader.ReadByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteByte(b)
	}
}

type binaryPLYReader struct {
	reader *bufio.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryPLYReader) scalar(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported PLY data type: %s", dataType)
	}
	data := b.buf[:size]
	if _, err := io.ReadFull(b.reader, data); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(data[0])), nil
	case "uchar", "uint8":
		return float64(data[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(data))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(data)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(data))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(data)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(data))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(data)), nil
	}
}

// plyTypeSize returns the byte size of a PLY scalar type, or 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	}
	return 0
}
