package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity is the range channels are clamped to before scaling by 256,
// so 1.0 maps to 255 rather than overflowing
var intensity = core.NewInterval(0, 0.999)

// Frame holds a rendered image as quantized 8-bit RGB triples, row-major from the top
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// QuantizeColor gamma-encodes a linear color and maps each channel to [0, 255]
func QuantizeColor(c core.Vec3) [3]uint8 {
	g := c.GammaCorrect()
	return [3]uint8{
		uint8(256 * intensity.Clamp(g.X)),
		uint8(256 * intensity.Clamp(g.Y)),
		uint8(256 * intensity.Clamp(g.Z)),
	}
}

// Set stores the quantized value of linear color c at pixel (i, j).
// Distinct pixels may be set concurrently.
func (f *Frame) Set(i, j int, c core.Vec3) {
	q := QuantizeColor(c)
	offset := 3 * (j*f.Width + i)
	copy(f.Pix[offset:offset+3], q[:])
}

// At returns the quantized color at pixel (i, j)
func (f *Frame) At(i, j int) [3]uint8 {
	offset := 3 * (j*f.Width + i)
	return [3]uint8{f.Pix[offset], f.Pix[offset+1], f.Pix[offset+2]}
}

// ToImage converts the frame to an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			p := f.At(i, j)
			img.SetRGBA(i, j, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img
}

// WritePPM writes the frame as a plain-text (P3) PPM: a three-line header
// followed by one "R G B" line per pixel
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for p := 0; p < len(f.Pix); p += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", f.Pix[p], f.Pix[p+1], f.Pix[p+2]); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}

// WritePNG encodes the frame as PNG
func (f *Frame) WritePNG(w io.Writer) error {
	if err := png.Encode(w, f.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
