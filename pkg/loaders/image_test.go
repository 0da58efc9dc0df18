package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

func checkTestPixels(t *testing.T, data *ImageData) {
	t.Helper()
	require.Equal(t, 2, data.Width)
	require.Equal(t, 2, data.Height)
	require.Len(t, data.Pixels, 4)

	expected := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	for i, want := range expected {
		got := data.Pixels[i]
		assert.InDelta(t, want.X, got.X, 0.01, "pixel %d red", i)
		assert.InDelta(t, want.Y, got.Y, 0.01, "pixel %d green", i)
		assert.InDelta(t, want.Z, got.Z, 0.01, "pixel %d blue", i)
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(testFile)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	data, err := LoadImage(testFile)
	require.NoError(t, err)
	assert.Equal(t, "png", data.Format)
	checkTestPixels(t, data)

	texture, err := data.Texture()
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(1, 0, 0), texture.Evaluate(core.NewVec2(0.9, 0.9), core.Vec3{}))
}

func TestDecodeImage_SniffsContentNotExtension(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage()))

	// A BMP saved under a misleading name still decodes as BMP
	testFile := filepath.Join(t.TempDir(), "texture.png")
	require.NoError(t, os.WriteFile(testFile, buf.Bytes(), 0644))

	data, err := LoadImage(testFile)
	require.NoError(t, err)
	assert.Equal(t, "bmp", data.Format)
	checkTestPixels(t, data)
}

func TestDecodeImage_RejectsNonImages(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = DecodeImage(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	assert.Error(t, err)
}
