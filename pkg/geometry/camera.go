package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrDegenerateCamera is returned when the camera basis cannot be built,
// e.g. when the view direction is parallel to the up vector
var ErrDegenerateCamera = errors.New("degenerate camera basis")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center          core.Vec3 // Camera position (look-from)
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Up direction (usually (0,1,0))
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width / height ratio
	VFov            float64   // Vertical field of view in degrees
	SamplesPerPixel int       // Number of ray samples averaged per pixel
	MaxDepth        int       // Maximum number of bounces per path
}

// Camera generates rays for rendering.
// It is immutable after construction; the With* methods return adjusted copies.
type Camera struct {
	config      CameraConfig
	height      int
	pixel00     core.Vec3 // Center of the top-left pixel
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors
}

// NewCamera derives the viewport and pixel grid from a config
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", config.Width)
	}
	if !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}

	height := max(1, int(float64(config.Width)/config.AspectRatio))

	view := config.Center.Subtract(config.LookAt)
	focalLength := view.Length()
	if focalLength == 0 {
		return nil, fmt.Errorf("%w: look-from equals look-at %v", ErrDegenerateCamera, config.Center)
	}

	w := view.Normalize()
	side := config.Up.Cross(w)
	if side.NearZero() {
		return nil, fmt.Errorf("%w: up %v is parallel to view direction %v", ErrDegenerateCamera, config.Up, w)
	}
	u := side.Normalize()
	v := w.Cross(u)

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	// Viewport edges: across the top, and down the left side
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		height:      height,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
	}, nil
}

// WithPosition returns a camera moved to a new position and orientation
func (c *Camera) WithPosition(center, lookAt, up core.Vec3) (*Camera, error) {
	cfg := c.config
	cfg.Center, cfg.LookAt, cfg.Up = center, lookAt, up
	return NewCamera(cfg)
}

// WithSampling returns a copy of the camera with a different sample count and depth
func (c *Camera) WithSampling(samplesPerPixel, maxDepth int) *Camera {
	cp := *c
	cp.config.SamplesPerPixel = samplesPerPixel
	cp.config.MaxDepth = maxDepth
	return &cp
}

// WithWidth returns a camera rendering at a different width and the same aspect ratio
func (c *Camera) WithWidth(width int) (*Camera, error) {
	cfg := c.config
	cfg.Width = width
	return NewCamera(cfg)
}

// GetRay returns a ray from the camera center through a random point inside pixel (i, j).
// j counts rows from the top of the image.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	return core.NewRay(c.config.Center, pixelSample.Subtract(c.config.Center))
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// SamplesPerPixel returns the number of samples averaged per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.config.SamplesPerPixel
}

// MaxDepth returns the bounce limit per path
func (c *Camera) MaxDepth() int {
	return c.config.MaxDepth
}

// PixelDeltas returns the world-space offsets between horizontally and vertically adjacent pixels
func (c *Camera) PixelDeltas() (core.Vec3, core.Vec3) {
	return c.pixelDeltaU, c.pixelDeltaV
}
