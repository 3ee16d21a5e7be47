package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Image is a floating-point RGB buffer holding linear, unclamped radiance.
// Gamma correction and 8-bit conversion happen only at export time.
type Image struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewImage creates a zeroed radiance buffer
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the radiance at pixel (x, y), row-major with y as the row
func (img *Image) At(x, y int) core.Vec3 {
	return img.pixels[y*img.Width+x]
}

// Set writes the radiance at pixel (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.pixels[y*img.Width+x] = c
}

// ToRGBA converts the radiance buffer to an 8-bit RGBA image, applying gamma
// correction (skipped when gamma == 1), clamping to [0, 1], and rounding
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			if gamma != 1 {
				c = c.GammaCorrect(gamma)
			}
			c = c.Clamp(0, 1)
			out.Set(x, y, color.RGBA{
				R: uint8(c.X*255 + 0.5),
				G: uint8(c.Y*255 + 0.5),
				B: uint8(c.Z*255 + 0.5),
				A: 255,
			})
		}
	}
	return out
}

// Thumbnail returns a bilinearly downsampled preview of the exported image.
// Height is derived from the aspect ratio.
func (img *Image) Thumbnail(width uint, gamma float64) image.Image {
	return resize.Resize(width, 0, img.ToRGBA(gamma), resize.Bilinear)
}

// WritePNG gamma-corrects the buffer and writes it as a PNG file
func (img *Image) WritePNG(filename string, gamma float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img.ToRGBA(gamma)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
