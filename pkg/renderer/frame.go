package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Frame is a rendered image: a dense row-major pixel buffer
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color // row-major, index y*Width+x
}

// NewFrame allocates a zeroed frame of the given size
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the pixel at (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set writes the pixel at (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// ARGB returns the frame as packed 0xAARRGGBB words, one per pixel,
// with the same indexing as Pixels. This is the layout pixel buffer
// libraries expect.
func (f *Frame) ARGB() []uint32 {
	packed := make([]uint32, len(f.Pixels))
	for i, c := range f.Pixels {
		packed[i] = c.ARGB()
	}
	return packed
}

// Image converts the frame to an NRGBA image for encoding or display
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetNRGBA(x, y, f.At(x, y).NRGBA())
		}
	}
	return img
}
