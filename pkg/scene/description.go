package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Format is a scene description file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for description files with an unrecognized extension
var ErrUnknownFormat = errors.New("unknown scene description format")

// FormatFromPath picks the description format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Description is a declarative scene: camera, named materials and a list of objects
type Description struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Group       string                         `json:"group"`
	Background  *Color                         `json:"background"`
	Camera      CameraDescription              `json:"camera"`
	Materials   map[string]MaterialDescription `json:"materials"`
	Objects     []ObjectDescription            `json:"objects"`
}

// CameraDescription holds camera and sampling settings. Zero values take defaults.
type CameraDescription struct {
	LookFrom    Vector  `json:"lookfrom"`
	LookAt      Vector  `json:"lookat"`
	Up          *Vector `json:"up"`
	VFov        float64 `json:"vfov"`
	Width       int     `json:"width"`
	AspectRatio float64 `json:"aspect_ratio"`
	Samples     int     `json:"samples"`
	Depth       int     `json:"depth"`
}

// MaterialDescription describes one named material.
// Type is one of lambertian, metal, dielectric, light or isotropic.
type MaterialDescription struct {
	Type    string              `json:"type"`
	Color   *Color              `json:"color"` // Albedo, or emission for lights
	Texture *TextureDescription `json:"texture"`
	Fuzz    float64             `json:"fuzz"`
	Index   float64             `json:"index"`
}

// TextureDescription is a checker or image texture
type TextureDescription struct {
	Type  string  `json:"type"`
	Scale float64 `json:"scale"`
	Odd   Color   `json:"odd"`
	Even  Color   `json:"even"`
	Path  string  `json:"path"`
}

// ObjectDescription is one scene object; which fields apply depends on Type
// (sphere, parallelogram, triangle, box, mesh or medium)
type ObjectDescription struct {
	Type     string `json:"type"`
	Material string `json:"material"`

	Center Vector  `json:"center"`
	Radius float64 `json:"radius"`

	Corner Vector `json:"corner"`
	U      Vector `json:"u"`
	V      Vector `json:"v"`

	Vertices []Vector `json:"vertices"`

	Min Vector `json:"min"`
	Max Vector `json:"max"`

	Path string `json:"path"`

	RotateY   float64 `json:"rotate_y"`
	Translate Vector  `json:"translate"`

	Boundary *ObjectDescription `json:"boundary"`
	Density  float64            `json:"density"`
	Albedo   *Color             `json:"albedo"`
}

// Vector is a 3-component array in a description
type Vector core.Vec3

// UnmarshalJSON requires exactly three numbers
func (v *Vector) UnmarshalJSON(data []byte) error {
	var xyz []float64
	if err := json.Unmarshal(data, &xyz); err != nil {
		return fmt.Errorf("vector must be an array of 3 numbers: %w", err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("vector must have 3 components, got %d", len(xyz))
	}
	*v = Vector(core.NewVec3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// Color is a linear RGB color. Descriptions may write it as an sRGB hex string
// ("#ffcc00"), a single gray level, or an array of three linear components.
type Color core.Vec3

// UnmarshalJSON accepts the three color spellings
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case string:
		hex, err := colorful.Hex(value)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", value, err)
		}
		r, g, b := hex.LinearRgb()
		*c = Color(core.NewVec3(r, g, b))
	case float64:
		*c = Color(core.NewVec3(value, value, value))
	default:
		var v Vector
		if err := v.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
		*c = Color(v)
	}
	return nil
}

// ParseDescription decodes a description. YAML and TOML documents are normalized
// through JSON so all three formats share one schema and its validation.
func ParseDescription(data []byte, format Format) (*Description, error) {
	var raw any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unsupported %s value: %w", format, err)
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()

	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("invalid scene description: %w", err)
	}
	return &d, nil
}

// ReadDescription reads and parses a description file
func ReadDescription(path string) (*Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	d, err := ParseDescription(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadFile reads a description file and builds its scene. Texture and mesh paths
// inside the file are resolved relative to the file's directory.
func LoadFile(path string, logger *slog.Logger) (*Scene, error) {
	d, err := ReadDescription(path)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d.Build(filepath.Dir(path), logger)
}

// cameraConfig applies defaults to the described camera
func (c CameraDescription) cameraConfig() geometry.CameraConfig {
	cfg := geometry.CameraConfig{
		Center:          core.Vec3(c.LookFrom),
		LookAt:          core.Vec3(c.LookAt),
		Up:              core.NewVec3(0, 1, 0),
		Width:           c.Width,
		AspectRatio:     c.AspectRatio,
		VFov:            c.VFov,
		SamplesPerPixel: c.Samples,
		MaxDepth:        c.Depth,
	}
	if c.Up != nil {
		cfg.Up = core.Vec3(*c.Up)
	}
	if cfg.Width == 0 {
		cfg.Width = 400
	}
	if cfg.AspectRatio == 0 {
		cfg.AspectRatio = 16.0 / 9.0
	}
	if cfg.VFov == 0 {
		cfg.VFov = 90
	}
	if cfg.SamplesPerPixel == 0 {
		cfg.SamplesPerPixel = 20
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = 20
	}
	return cfg
}

// Build turns the description into a scene. Every invalid material or object is
// reported, not just the first.
func (d *Description) Build(baseDir string, logger *slog.Logger) (*Scene, error) {
	b := NewBuilder(logger)

	materials := make(map[string]material.Material, len(d.Materials))
	for name, md := range d.Materials {
		mat, err := md.build(baseDir)
		if err != nil {
			b.Fail(fmt.Errorf("material %s: %w", name, err))
			continue
		}
		materials[name] = mat
	}

	for i, od := range d.Objects {
		b.Add(od.build(b, fmt.Sprintf("object %d (%s)", i, od.Type), materials, baseDir, false))
	}

	var background core.Vec3
	if d.Background != nil {
		background = core.Vec3(*d.Background)
	}
	return b.Build(d.Name, d.Camera.cameraConfig(), background)
}

func (md MaterialDescription) build(baseDir string) (material.Material, error) {
	var texture material.Texture
	switch {
	case md.Texture != nil:
		t, err := md.Texture.build(baseDir)
		if err != nil {
			return nil, err
		}
		texture = t
	case md.Color != nil:
		texture = material.NewSolidColor(core.Vec3(*md.Color))
	case md.Type != "dielectric":
		return nil, errors.New("needs a color or texture")
	}

	switch md.Type {
	case "lambertian":
		return material.NewTexturedLambertian(texture), nil
	case "metal":
		if md.Color == nil {
			return nil, errors.New("metal needs a color")
		}
		return material.NewMetal(core.Vec3(*md.Color), md.Fuzz), nil
	case "dielectric":
		if md.Index <= 0 {
			return nil, fmt.Errorf("dielectric index must be positive, got %g", md.Index)
		}
		return material.NewDielectric(md.Index), nil
	case "light":
		return material.NewTexturedDiffuseLight(texture), nil
	case "isotropic":
		return material.NewTexturedIsotropic(texture), nil
	}
	return nil, fmt.Errorf("unknown material type %q", md.Type)
}

func (td TextureDescription) build(baseDir string) (material.Texture, error) {
	switch td.Type {
	case "checker":
		if td.Scale <= 0 {
			return nil, fmt.Errorf("checker scale must be positive, got %g", td.Scale)
		}
		return material.NewCheckerColors(td.Scale, core.Vec3(td.Odd), core.Vec3(td.Even)), nil
	case "image":
		data, err := loaders.LoadImage(resolve(baseDir, td.Path))
		if err != nil {
			return nil, err
		}
		return data.Texture()
	}
	return nil, fmt.Errorf("unknown texture type %q", td.Type)
}

// build creates the object's shape, recording any error on the builder and returning nil.
// Medium boundaries are never shaded, so they may omit the material.
func (od ObjectDescription) build(b *Builder, label string, materials map[string]material.Material, baseDir string, boundary bool) geometry.Shape {
	var mat material.Material = material.Invisible{}
	if od.Type != "medium" && !(boundary && od.Material == "") {
		m, ok := materials[od.Material]
		if !ok {
			b.Fail(fmt.Errorf("%s: unknown material %q", label, od.Material))
			return nil
		}
		mat = m
	}

	var shape geometry.Shape
	switch od.Type {
	case "sphere":
		shape = b.Sphere(core.Vec3(od.Center), od.Radius, mat)
	case "parallelogram", "quad":
		shape = b.Parallelogram(core.Vec3(od.Corner), core.Vec3(od.U), core.Vec3(od.V), mat)
	case "triangle":
		if len(od.Vertices) != 3 {
			b.Fail(fmt.Errorf("%s: triangle needs 3 vertices, got %d", label, len(od.Vertices)))
			return nil
		}
		shape = b.Triangle(core.Vec3(od.Vertices[0]), core.Vec3(od.Vertices[1]), core.Vec3(od.Vertices[2]), mat)
	case "box":
		shape = b.Box(core.Vec3(od.Min), core.Vec3(od.Max), mat)
	case "mesh":
		data, err := loaders.LoadMesh(resolve(baseDir, od.Path))
		if err != nil {
			b.Fail(fmt.Errorf("%s: %w", label, err))
			return nil
		}
		shape = b.Mesh(od.Path, data.Vertices, data.Faces, mat)
	case "medium":
		if od.Boundary == nil {
			b.Fail(fmt.Errorf("%s: medium needs a boundary", label))
			return nil
		}
		var albedo core.Vec3
		if od.Albedo != nil {
			albedo = core.Vec3(*od.Albedo)
		}
		inner := od.Boundary.build(b, label+" boundary", materials, baseDir, true)
		shape = b.Medium(inner, od.Density, albedo)
	default:
		b.Fail(fmt.Errorf("%s: unknown object type %q", label, od.Type))
		return nil
	}

	return Place(shape, od.RotateY, core.Vec3(od.Translate))
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
