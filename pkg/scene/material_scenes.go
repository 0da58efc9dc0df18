package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewMaterialSpheresScene places the basic materials side by side on a large ground sphere.
// The left sphere is a glass shell: an inner sphere with the inverse index makes it hollow.
func NewMaterialSpheresScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	b.Add(
		b.Sphere(core.NewVec3(0, -100.5, -1), 100, ground),
		b.Sphere(core.NewVec3(0, 0, -1.0), 0.5, center),
		b.Sphere(core.NewVec3(-1.0, 0, -1.0), 0.5, glass),
		b.Sphere(core.NewVec3(-1.0, 0, -1.0), 0.4, bubble),
		b.Sphere(core.NewVec3(1.0, 0, -1.0), 0.5, gold),
	)

	camera := defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 16.0/9.0, 400, 90)
	return b.Build("material-spheres", camera, sky)
}

// NewCheckeredSpheresScene shows the solid checker texture on two touching spheres
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	checker := material.NewTexturedLambertian(material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	b.Add(
		b.Sphere(core.NewVec3(0, -10, 0), 10, checker),
		b.Sphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	camera := defaultCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 16.0/9.0, 400, 20)
	return b.Build("checkered-spheres", camera, sky)
}

// NewEarthScene wraps an image texture around a sphere
func NewEarthScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	var texture material.Texture
	if opts.TexturePath == "" {
		texture = material.NewCheckerboardImage(512, 256, 32,
			core.NewVec3(0.1, 0.3, 0.7),
			core.NewVec3(0.2, 0.6, 0.2),
		)
	} else {
		data, err := loaders.LoadImage(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		image, err := data.Texture()
		if err != nil {
			return nil, err
		}
		texture = image
	}

	b.Add(b.Sphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	camera := defaultCamera(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), 16.0/9.0, 400, 20)
	return b.Build("earth", camera, sky)
}

// NewThreeSpheresScene is a small ground, diffuse and metal arrangement used as a quick smoke test
func NewThreeSpheresScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Logger)

	b.Add(
		b.Sphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		b.Sphere(core.NewVec3(-0.6, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		b.Sphere(core.NewVec3(0.6, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
	)

	camera := defaultCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 2.0, 400, 90)
	return b.Build("three-spheres", camera, sky)
}
