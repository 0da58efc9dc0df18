package renderer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrNoWorld is returned when a raytracer is asked to render without a scene root
var ErrNoWorld = errors.New("no world to render")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Workers    int       // Number of parallel row workers (0 = runtime.NumCPU())
	Seed       int64     // Base seed; every row derives its own random stream from it
	Background core.Vec3 // Radiance of rays that leave the scene
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers: runtime.NumCPU(),
		Seed:    0,
	}
}

// ProgressFunc is called after each finished row.
// It may be called concurrently from several workers.
type ProgressFunc func(rowsDone, totalRows int)

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	camera     *geometry.Camera
	config     RenderConfig
	integrator integrator.Integrator
	logger     *slog.Logger
	progress   ProgressFunc
}

// NewRaytracer creates a new raytracer for a scene root and camera.
// A nil logger falls back to slog.Default().
func NewRaytracer(world geometry.Shape, camera *geometry.Camera, config RenderConfig, logger *slog.Logger) *Raytracer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}

	pt := integrator.NewPathTracingIntegrator(camera.MaxDepth())
	pt.Background = config.Background

	return &Raytracer{
		world:      world,
		camera:     camera,
		config:     config,
		integrator: pt,
		logger:     logger,
	}
}

// SetProgressCallback installs a callback invoked as rows complete
func (rt *Raytracer) SetProgressCallback(fn ProgressFunc) {
	rt.progress = fn
}

// Render renders the full frame. Rows are rendered in parallel, each with its own
// seeded sampler, so the output is identical for any worker count.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if rt.world == nil {
		return nil, RenderStats{}, ErrNoWorld
	}

	width, height := rt.camera.Width(), rt.camera.Height()
	spp := rt.camera.SamplesPerPixel()

	rt.logger.Info("render started",
		"width", width,
		"height", height,
		"spp", spp,
		"depth", rt.camera.MaxDepth(),
		"workers", rt.config.Workers,
		"seed", rt.config.Seed)

	start := time.Now()
	frame := NewFrame(width, height)
	rowStats := make([]RenderStats, height)
	var rowsDone atomic.Int64

	err := renderRows(ctx, height, rt.config.Workers, func(j int) error {
		rowStats[j] = rt.renderRow(j, frame)
		done := int(rowsDone.Add(1))
		if rt.progress != nil {
			rt.progress(done, height)
		}
		return nil
	})
	if err != nil {
		rt.logger.Warn("render aborted", "rows_done", rowsDone.Load(), "error", err)
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}

	stats := mergeStats(rowStats)
	stats.Workers = rt.config.Workers
	stats.Elapsed = time.Since(start)

	rt.logger.Info("render finished",
		"elapsed", stats.Elapsed,
		"samples", stats.TotalSamples,
		"avg_luminance", stats.AverageLuminance,
		"avg_variance", stats.AverageVariance)

	return frame, stats, nil
}

// renderRow renders row j into the frame with a sampler private to that row
func (rt *Raytracer) renderRow(j int, frame *Frame) RenderStats {
	sampler := core.NewSeededSampler(core.StreamSeed(rt.config.Seed, j))
	spp := rt.camera.SamplesPerPixel()
	var stats RenderStats

	for i := 0; i < frame.Width; i++ {
		var ps PixelStats
		for s := 0; s < spp; s++ {
			ray := rt.camera.GetRay(i, j, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}

		color := ps.GetColor()
		frame.Set(i, j, color)
		stats.add(&ps, color)
	}

	return stats
}
