package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in every direction. It is the phase function
// of participating media.
type Isotropic struct {
	nonEmissive
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(sampler)),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
