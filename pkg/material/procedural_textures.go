package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerboardImage creates a checkerboard image texture in UV space.
// Scenes use it in place of a photo texture when no image file is available.
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}
