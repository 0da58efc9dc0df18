package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for secondary rays, so a scattered
// ray does not re-hit the surface it left because of floating point error
const ShadowAcneEpsilon = 1e-4

// PathTracingIntegrator implements unidirectional path tracing with a hard bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background core.Vec3 // Radiance returned by rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator with a black background
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.radiance(ray, world, sampler, pt.MaxDepth)
}

func (pt *PathTracingIntegrator) radiance(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background
	}

	hit.Emitted = hit.Material.Emitted(hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return hit.Emitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.radiance(scatter.Scattered, world, sampler, depth-1))
	return hit.Emitted.Add(colorScattered)
}
