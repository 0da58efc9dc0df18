package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light leaves a surface point.
// Implementations are immutable and safe to share between shapes and goroutines.
type Material interface {
	// Scatter generates the continuation ray for rayIn at hit.
	// It returns false when the path is absorbed at this point.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance the surface emits at the given texture
	// coordinates and point (black for non-emitters).
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
	Emitted   core.Vec3 // Emission gathered at this hit by the integrator
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive provides the black Emitted method shared by reflective materials
type nonEmissive struct{}

func (nonEmissive) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
