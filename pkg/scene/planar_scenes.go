package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	planarRed    = material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	planarGreen  = material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	planarBlue   = material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	planarOrange = material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	planarTeal   = material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))
)

func planarCamera() core.Vec3 { return core.NewVec3(0, 0, 9) }

// NewQuadsScene arranges five parallelograms as the open sides of a box facing the camera
func NewQuadsScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	b.Add(
		b.Parallelogram(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), planarRed),
		b.Parallelogram(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), planarGreen),
		b.Parallelogram(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), planarBlue),
		b.Parallelogram(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), planarOrange),
		b.Parallelogram(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), planarTeal),
	)

	camera := defaultCamera(planarCamera(), core.NewVec3(0, 0, 0), 1.0, 400, 80)
	return b.Build("quads", camera, sky)
}

// NewPlanarsScene replaces four of the quads with triangles
func NewPlanarsScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	b.Add(
		b.Parallelogram(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), planarGreen),
		b.Triangle(core.NewVec3(-3, -2, 1), core.NewVec3(-3, -2, 5), core.NewVec3(-3, 2, 1), planarRed),
		b.Triangle(core.NewVec3(3, -2, 1), core.NewVec3(3, -2, 5), core.NewVec3(3, 2, 5), planarBlue),
		b.Triangle(core.NewVec3(-2, 3, 1), core.NewVec3(2, 3, 1), core.NewVec3(0, 3, 5), planarOrange),
		b.Triangle(core.NewVec3(-2, -3, 1), core.NewVec3(2, -3, 1), core.NewVec3(0, -3, 5), planarTeal),
	)

	camera := defaultCamera(planarCamera(), core.NewVec3(0, 0, 0), 1.0, 400, 80)
	return b.Build("planars", camera, sky)
}

// NewSimpleLightScene lights two spheres with a single emissive parallelogram and no sky
func NewSimpleLightScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	b.Add(
		b.Sphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		b.Sphere(core.NewVec3(0, 2, 0), 2, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		b.Parallelogram(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
			material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	camera := defaultCamera(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 16.0/9.0, 400, 20)
	return b.Build("simple-light", camera, core.Vec3{})
}
