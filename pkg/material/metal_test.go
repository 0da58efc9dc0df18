package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float64
		expected float64
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"inside", 0.3, 0.3},
		{"above one", 2.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetal(core.NewVec3(1, 1, 1), tt.fuzz)
			assert.Equal(t, tt.expected, m.Fuzzness)
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(2, -2, 0))
	hit := &HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: true, Material: metal}

	result, ok := metal.Scatter(ray, hit, core.NewSeededSampler(42))
	if !ok {
		t.Fatal("Metal should always scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	tolerance := 1e-9
	if math.Abs(result.Scattered.Direction.X-expected.X) > tolerance ||
		math.Abs(result.Scattered.Direction.Y-expected.Y) > tolerance ||
		math.Abs(result.Scattered.Direction.Z-expected.Z) > tolerance {
		t.Errorf("Expected reflected direction %v, got %v", expected, result.Scattered.Direction)
	}
	assert.Equal(t, core.NewVec3(0.8, 0.6, 0.2), result.Attenuation)
	assert.Equal(t, hit.Point, result.Scattered.Origin)
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.3)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	sampler := core.NewSeededSampler(42)

	mirror := core.NewVec3(0, 1, 0)
	for i := 0; i < 100; i++ {
		result, ok := metal.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Metal should always scatter, even when fuzz points below the surface")
		}
		offset := result.Scattered.Direction.Subtract(mirror).Length()
		if offset > 0.3+1e-9 {
			t.Fatalf("Fuzzed direction %v is farther than fuzz radius from mirror", result.Scattered.Direction)
		}
	}
}
