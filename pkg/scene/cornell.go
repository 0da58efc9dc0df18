package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

var (
	cornellRed   = material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	cornellWhite = material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cornellGreen = material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
)

// addCornellWalls adds the five walls and the ceiling light
func addCornellWalls(b *Builder, lightIntensity float64) {
	light := material.NewDiffuseLight(core.NewVec3(lightIntensity, lightIntensity, lightIntensity))

	b.Add(
		// Right wall (green), YZ plane at x=boxSize
		b.Parallelogram(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), cornellGreen),
		// Left wall (red), YZ plane at x=0
		b.Parallelogram(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), cornellRed),
		// Light just below the ceiling
		b.Parallelogram(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		// Floor
		b.Parallelogram(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), cornellWhite),
		// Ceiling
		b.Parallelogram(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), cornellWhite),
		// Back wall
		b.Parallelogram(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), cornellWhite),
	)
}

// cornellBoxes returns the tall and short boxes, rotated and moved into place
func cornellBoxes(b *Builder) (tall, short geometry.Shape) {
	tall = Place(b.Box(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), cornellWhite), 15, core.NewVec3(265, 0, 295))
	short = Place(b.Box(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), cornellWhite), -18, core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellCamera() geometry.CameraConfig {
	cfg := defaultCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 1.0, 600, 40)
	cfg.SamplesPerPixel = 50
	return cfg
}

// NewCornellBoxScene creates a classic Cornell box scene with parallelogram walls and area lighting
func NewCornellBoxScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	addCornellWalls(b, 15)
	b.Add(cornellBoxes(b))

	return b.Build("cornell-box", cornellCamera(), core.Vec3{})
}

// NewCornellSmokeScene replaces the Cornell boxes with constant-density smoke
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	addCornellWalls(b, 20)
	tall, short := cornellBoxes(b)
	b.Add(
		b.Medium(tall, 0.01, core.NewVec3(0, 0, 0)),
		b.Medium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	camera := cornellCamera()
	camera.Width = 900
	camera.SamplesPerPixel = 150
	camera.MaxDepth = 75
	return b.Build("cornell-smoke", camera, core.Vec3{})
}
