package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrTextureSize is returned when pixel data does not match the stated dimensions
var ErrTextureSize = errors.New("texture pixel count does not match dimensions")

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewImageTexture creates a new image texture over linear [0,1] RGB pixels
func NewImageTexture(width, height int, pixels []core.Vec3) (*ImageTexture, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrTextureSize, width, height, len(pixels))
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// Coordinates outside [0,1] are clamped, not wrapped.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	v := 1.0 - unit.Clamp(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1 lands one past the edge
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
