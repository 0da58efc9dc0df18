package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with configurable fuzziness
type Metal struct {
	nonEmissive
	Albedo   core.Vec3 // Base color/reflectance
	Fuzzness float64   // Fuzziness factor in [0, 1], 0 = perfect mirror
}

// NewMetal creates a new metal material; fuzzness is clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the incoming ray about the normal and perturbs it by the fuzz sphere.
// Fuzzed directions that end up below the surface still scatter.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzzness))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
