package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RGB is an 8-bit display color
type RGB struct {
	R, G, B uint8
}

// Framebuffer holds the averaged linear radiance of every pixel. Row 0 is the
// top of the image.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the linear color of pixel (x, row)
func (fb *Framebuffer) Set(x, row int, c core.Vec3) {
	fb.pixels[row*fb.Width+x] = c
}

// At returns the linear color of pixel (x, row)
func (fb *Framebuffer) At(x, row int) core.Vec3 {
	return fb.pixels[row*fb.Width+x]
}

// RGBAt returns the display color of pixel (x, row)
func (fb *Framebuffer) RGBAt(x, row int) RGB {
	return ToRGB(fb.At(x, row))
}

// Image converts the framebuffer to an RGBA image with gamma correction applied
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.RGBAt(x, row)
			img.SetRGBA(x, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// ToRGB gamma corrects a linear color with gamma 2, clamps it to [0, 0.999]
// and quantizes each channel to floor(256*v)
func ToRGB(c core.Vec3) RGB {
	return RGB{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
	}
}

func quantize(v float64) uint8 {
	// NaN samples are treated as black
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	v = math.Sqrt(v)
	v = max(0.0, min(0.999, v))
	return uint8(256 * v)
}
