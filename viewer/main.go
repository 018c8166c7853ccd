// Command viewer renders a scene into a desktop window. Resizing the
// window rebuilds the camera and re-renders at the new size.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	sceneID := flag.String("scene", "three-spheres", "Scene to display")
	width := flag.Int("width", 0, "Window width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Window height in pixels (0 = scene default)")
	scenesDir := flag.String("scenes-dir", "scenes", "Directory searched for JSON scene files")
	flag.Parse()

	s, err := scene.BuildScene(*sceneID, *scenesDir,
		geometry.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	driver.Main(func(scr screen.Screen) {
		if err := show(scr, s); err != nil {
			log.Fatalf("viewer: %v", err)
		}
	})
}

// show runs the window event loop until the window closes
func show(scr screen.Screen, s *scene.Scene) error {
	window, err := scr.NewWindow(&screen.NewWindowOptions{
		Title:  "Phong Raytracer - " + s.Name,
		Width:  s.CameraConfig.Width,
		Height: s.CameraConfig.Height,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Release()

	var buffer screen.Buffer
	defer func() {
		if buffer != nil {
			buffer.Release()
		}
	}()

	logger := renderer.NewDefaultLogger()

	for {
		switch e := window.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			if buffer != nil {
				buffer.Release()
				buffer = nil
			}
			if e.WidthPx == 0 || e.HeightPx == 0 {
				// Minimized; nothing to draw
				continue
			}
			buffer, err = scr.NewBuffer(image.Point{X: e.WidthPx, Y: e.HeightPx})
			if err != nil {
				return fmt.Errorf("failed to allocate screen buffer: %w", err)
			}
			// The camera is rebuilt at the new size on the next paint
			s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig,
				geometry.CameraConfig{Width: e.WidthPx, Height: e.HeightPx})
			window.Send(paint.Event{})

		case paint.Event:
			if buffer == nil {
				continue
			}
			frame, _, err := renderer.NewRenderer(s, logger).
				Render(context.Background(), renderer.RenderOptions{})
			if err != nil {
				return err
			}
			draw.Draw(buffer.RGBA(), buffer.Bounds(), frame.Image(), image.Point{}, draw.Src)
			window.Upload(image.Point{}, buffer, buffer.Bounds())
			window.Publish()

		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape || e.Rune == 'q' || e.Rune == 'Q' {
				return nil
			}
		}
	}
}
