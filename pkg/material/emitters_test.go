package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestDiffuseLight_EmitsAndAbsorbs(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(15, 15, 15))
	hit := &HitRecord{Normal: core.NewVec3(0, -1, 0), FrontFace: true}

	_, scattered := light.Scatter(core.Ray{}, hit, core.NewSeededSampler(42))
	assert.False(t, scattered)
	assert.Equal(t, core.NewVec3(15, 15, 15), light.Emitted(core.NewVec2(0.2, 0.8), core.NewVec3(1, 2, 3)))
}

func TestNonEmitters_EmitBlack(t *testing.T) {
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewVec3(1, 1, 1)),
		"metal":      NewMetal(core.NewVec3(1, 1, 1), 0),
		"dielectric": NewDielectric(1.5),
		"isotropic":  NewIsotropic(core.NewVec3(1, 1, 1)),
		"invisible":  Invisible{},
	}

	for name, m := range materials {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, core.Vec3{}, m.Emitted(core.NewVec2(0, 0), core.Vec3{}))
		})
	}
}

func TestInvisible_NeverScatters(t *testing.T) {
	_, ok := Invisible{}.Scatter(core.Ray{}, &HitRecord{}, core.NewSeededSampler(42))
	assert.False(t, ok)
}

func TestIsotropic_ScattersUniformly(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	hit := &HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(1, 0, 0), FrontFace: true}
	sampler := core.NewSeededSampler(42)

	var backward int
	for i := 0; i < 2000; i++ {
		result, ok := iso.Scatter(core.Ray{}, hit, sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		assert.InDelta(t, 1.0, result.Scattered.Direction.Length(), 1e-9)
		if result.Scattered.Direction.X < 0 {
			backward++
		}
	}

	// Unlike a surface material, half the directions go "behind" the normal
	assert.InDelta(t, 1000, backward, 150)
}
