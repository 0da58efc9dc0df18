package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNotAnImage is returned when a texture file's content is not a recognized image format
var ErrNotAnImage = errors.New("not a supported image")

// sniffLen is the number of header bytes filetype needs to classify a file
const sniffLen = 262

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Format string // Decoder that read the image, e.g. "png"
	Pixels []core.Vec3
}

// Texture wraps the pixels in an image texture
func (d *ImageData) Texture() (*material.ImageTexture, error) {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImage loads an image file and converts it to a Vec3 color array.
// The format is detected from the file content, not its extension.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage sniffs and decodes an image stream (PNG, JPEG, GIF, BMP, TIFF or WebP)
func DecodeImage(r io.Reader) (*ImageData, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	if !filetype.IsImage(head) {
		kind, _ := filetype.Match(head)
		return nil, fmt.Errorf("%w: detected %q", ErrNotAnImage, kind.MIME.Value)
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}
