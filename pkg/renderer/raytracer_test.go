package renderer

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// threeSpheres is a ground sphere with a diffuse and a metal sphere resting on it
func threeSpheres(t *testing.T, spp, depth int) (geometry.Shape, *geometry.Camera) {
	t.Helper()

	ground, err := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0)))
	require.NoError(t, err)
	diffuse, err := geometry.NewSphere(core.NewVec3(-0.6, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	require.NoError(t, err)
	metal, err := geometry.NewSphere(core.NewVec3(0.6, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	require.NoError(t, err)

	world, err := geometry.NewBVH([]geometry.Shape{ground, diffuse, metal})
	require.NoError(t, err)

	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           40,
		AspectRatio:     2.0,
		VFov:            90,
		SamplesPerPixel: spp,
		MaxDepth:        depth,
	})
	require.NoError(t, err)
	return world, camera
}

func TestRaytracer_GoldenThreeSpheres(t *testing.T) {
	tests := []struct {
		name       string
		spp, depth int
		seed       int64
		background core.Vec3
		expected   []string
	}{
		{"direct only", 1, 1, 1, core.NewVec3(0.25, 0.25, 0.25), goldenDirectOnly},
		{"two bounces", 2, 2, 7, core.NewVec3(0.7, 0.8, 1.0), goldenTwoBounces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, camera := threeSpheres(t, tt.spp, tt.depth)
			config := RenderConfig{Workers: 4, Seed: tt.seed, Background: tt.background}

			frame, _, err := NewRaytracer(world, camera, config, quietLogger()).Render(context.Background())
			require.NoError(t, err)
			require.Equal(t, 40, frame.Width)
			require.Len(t, tt.expected, frame.Height)

			stride := 3 * frame.Width
			for j, row := range tt.expected {
				assert.Equal(t, row, hex.EncodeToString(frame.Pix[j*stride:(j+1)*stride]), "row %d", j)
			}
		})
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	world, camera := threeSpheres(t, 4, 8)
	background := core.NewVec3(0.7, 0.8, 1.0)

	render := func(workers int, seed int64) *Frame {
		config := RenderConfig{Workers: workers, Seed: seed, Background: background}
		frame, _, err := NewRaytracer(world, camera, config, quietLogger()).Render(context.Background())
		require.NoError(t, err)
		return frame
	}

	reference := render(1, 42)
	for _, workers := range []int{2, 3, 8} {
		assert.Equal(t, reference.Pix, render(workers, 42).Pix, "workers=%d", workers)
	}

	assert.NotEqual(t, reference.Pix, render(1, 43).Pix, "different seeds should give different noise")
}

func TestRaytracer_Stats(t *testing.T) {
	world, camera := threeSpheres(t, 3, 2)

	_, stats, err := NewRaytracer(world, camera, RenderConfig{Workers: 2}, quietLogger()).Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40*20, stats.TotalPixels)
	assert.Equal(t, 40*20*3, stats.TotalSamples)
	assert.Equal(t, 3.0, stats.AverageSamples)
	assert.Greater(t, stats.AverageVariance, 0.0, "edge and bounce noise")
	assert.Equal(t, 2, stats.Workers)

	world, camera = threeSpheres(t, 1, 2)
	_, single, err := NewRaytracer(world, camera, RenderConfig{Workers: 2}, quietLogger()).Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, single.AverageVariance)
}

func TestRaytracer_ProgressCallback(t *testing.T) {
	world, camera := threeSpheres(t, 1, 1)
	rt := NewRaytracer(world, camera, RenderConfig{Workers: 3}, quietLogger())

	var mu sync.Mutex
	calls, lastDone := 0, 0
	rt.SetProgressCallback(func(rowsDone, totalRows int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		lastDone = max(lastDone, rowsDone)
		assert.Equal(t, 20, totalRows)
	})

	_, _, err := rt.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, calls)
	assert.Equal(t, 20, lastDone)
}

func TestRaytracer_CanceledContext(t *testing.T) {
	world, camera := threeSpheres(t, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, _, err := NewRaytracer(world, camera, DefaultRenderConfig(), quietLogger()).Render(ctx)
	assert.Nil(t, frame)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRaytracer_NoWorld(t *testing.T) {
	_, camera := threeSpheres(t, 1, 1)

	_, _, err := NewRaytracer(nil, camera, DefaultRenderConfig(), nil).Render(context.Background())
	assert.ErrorIs(t, err, ErrNoWorld)
}
