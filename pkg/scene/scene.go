package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/medium"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      geometry.Shape   // BVH over every object in the scene
	Camera     *geometry.Camera // Includes image size and sampling settings
	Background core.Vec3        // Radiance of rays that leave the scene
}

// Builder assembles a scene's objects. Constructor errors are collected rather than
// returned one by one; Build reports all of them together.
type Builder struct {
	shapes []geometry.Shape
	errs   []error
	logger *slog.Logger
}

// NewBuilder creates an empty builder. A nil logger falls back to slog.Default().
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Add adds finished shapes to the scene. Nil shapes (from failed constructors) are ignored.
func (b *Builder) Add(shapes ...geometry.Shape) {
	for _, s := range shapes {
		if s != nil {
			b.shapes = append(b.shapes, s)
		}
	}
}

// Fail records a construction error
func (b *Builder) Fail(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Err returns the errors recorded so far, joined
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// Sphere creates a sphere, or records the error and returns nil
func (b *Builder) Sphere(center core.Vec3, radius float64, mat material.Material) geometry.Shape {
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		b.Fail(err)
		return nil
	}
	return s
}

// Parallelogram creates a parallelogram, or records the error and returns nil
func (b *Builder) Parallelogram(corner, u, v core.Vec3, mat material.Material) geometry.Shape {
	p, err := geometry.NewParallelogram(corner, u, v, mat)
	if err != nil {
		b.Fail(err)
		return nil
	}
	return p
}

// Triangle creates a triangle, or records the error and returns nil
func (b *Builder) Triangle(v0, v1, v2 core.Vec3, mat material.Material) geometry.Shape {
	t, err := geometry.NewTriangle(v0, v1, v2, mat)
	if err != nil {
		b.Fail(err)
		return nil
	}
	return t
}

// Box creates an axis-aligned box, or records the error and returns nil
func (b *Builder) Box(a, c core.Vec3, mat material.Material) geometry.Shape {
	box, err := geometry.NewBox(a, c, mat)
	if err != nil {
		b.Fail(err)
		return nil
	}
	return box
}

// Mesh creates a triangle mesh. Degenerate faces are dropped with a warning.
func (b *Builder) Mesh(name string, vertices []core.Vec3, faces []int, mat material.Material) geometry.Shape {
	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat)
	if err != nil {
		b.Fail(fmt.Errorf("mesh %s: %w", name, err))
		return nil
	}
	if skipped := mesh.SkippedCount(); skipped > 0 {
		b.logger.Warn("skipped degenerate mesh triangles",
			"mesh", name,
			"skipped", skipped,
			"kept", mesh.TriangleCount())
	}
	return mesh
}

// Medium fills a boundary shape with a constant-density participating medium
func (b *Builder) Medium(boundary geometry.Shape, density float64, albedo core.Vec3) geometry.Shape {
	if boundary == nil {
		return nil
	}
	m, err := medium.NewConstantMediumColor(boundary, density, albedo)
	if err != nil {
		b.Fail(err)
		return nil
	}
	return m
}

// Place rotates a shape about the Y axis by degrees, then translates it by offset
func Place(shape geometry.Shape, degrees float64, offset core.Vec3) geometry.Shape {
	if shape == nil {
		return nil
	}
	if degrees != 0 {
		shape = geometry.NewRotateY(shape, degrees)
	}
	if offset != (core.Vec3{}) {
		shape = geometry.NewTranslate(shape, offset)
	}
	return shape
}

// Build wraps the collected shapes in a BVH and creates the camera
func (b *Builder) Build(name string, camera geometry.CameraConfig, background core.Vec3) (*Scene, error) {
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	world, err := geometry.NewBVH(b.shapes)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	cam, err := geometry.NewCamera(camera)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	b.logger.Debug("scene built", "scene", name, "objects", len(b.shapes))

	return &Scene{
		Name:       name,
		World:      world,
		Camera:     cam,
		Background: background,
	}, nil
}

// Options carries inputs that some built-in scenes take from outside
type Options struct {
	TexturePath string       // Image for the earth scene; a procedural checkerboard is used when empty
	MeshPath    string       // OBJ or PLY file for the mesh scene; a procedural icosahedron is used when empty
	Logger      *slog.Logger // Destination for build warnings
}

// sky is the constant background of the daylight scenes
var sky = core.NewVec3(0.70, 0.80, 1.00)

func defaultCamera(center, lookAt core.Vec3, aspect float64, width int, vfov float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:          center,
		LookAt:          lookAt,
		Up:              core.NewVec3(0, 1, 0),
		Width:           width,
		AspectRatio:     aspect,
		VFov:            vfov,
		SamplesPerPixel: 20,
		MaxDepth:        20,
	}
}
