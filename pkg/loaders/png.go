package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Height of the label strip WriteAnnotatedPNG appends below the image
const labelStripHeight = 18

// WritePNG writes an image to path, creating parent directories as
// needed
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteAnnotatedPNG writes an image with a black label strip along the
// bottom, for tagging renders with the scene name and timing
func WriteAnnotatedPNG(path string, img image.Image, label string) error {
	bounds := img.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy()+labelStripHeight)

	dc.DrawImage(img, 0, 0)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, float64(bounds.Dy()), float64(bounds.Dx()), labelStripHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawString(label, 4, float64(bounds.Dy()+labelStripHeight-5))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
