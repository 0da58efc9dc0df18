package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	AverageSamples   float64       // Average samples per pixel
	AverageLuminance float64       // Mean linear luminance of the averaged pixels
	AverageVariance  float64       // Mean per-pixel luminance variance; 0 below 2 spp
	Workers          int           // Worker count the frame was rendered with
	Elapsed          time.Duration // Wall-clock render time

	luminanceSum float64
	varianceSum  float64
}

// add folds one finished pixel into the statistics
func (s *RenderStats) add(ps *PixelStats, color core.Vec3) {
	s.TotalPixels++
	s.TotalSamples += ps.SampleCount
	s.luminanceSum += color.Luminance()
	s.varianceSum += ps.Variance()
}

// mergeStats folds per-row statistics into frame statistics
func mergeStats(rows []RenderStats) RenderStats {
	var total RenderStats
	for _, row := range rows {
		total.TotalPixels += row.TotalPixels
		total.TotalSamples += row.TotalSamples
		total.luminanceSum += row.luminanceSum
		total.varianceSum += row.varianceSum
	}
	if total.TotalPixels > 0 {
		pixels := float64(total.TotalPixels)
		total.AverageSamples = float64(total.TotalSamples) / pixels
		total.AverageLuminance = total.luminanceSum / pixels
		total.AverageVariance = total.varianceSum / pixels
	}
	return total
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, (ps.LuminanceSqAccum-n*mean*mean)/(n-1))
}
