// Package renderer turns a scene into a frame of pixels, one camera ray
// per pixel, shaded by an integrator.
package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderOptions contains per-pass options
type RenderOptions struct {
	// OnScanline, when set, is called after each completed scanline with
	// the number of finished lines and the image height
	OnScanline func(line, height int)
}

// Renderer renders a scene through its camera with an integrator. A
// pass runs on the calling goroutine; callers own any concurrency.
type Renderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRenderer creates a renderer for a scene, shading with Phong
func NewRenderer(s *scene.Scene, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		scene:      s,
		camera:     geometry.NewCamera(s.CameraConfig),
		integrator: integrator.NewPhong(),
		logger:     logger,
	}
}

// SetIntegrator replaces the shading model
func (r *Renderer) SetIntegrator(i integrator.Integrator) {
	r.integrator = i
}

// Camera returns the camera the renderer was built with
func (r *Renderer) Camera() *geometry.Camera {
	return r.camera
}

// Render traces one ray per pixel, row by row. The context is checked
// once per scanline; a cancelled render returns the context error and
// no frame.
func (r *Renderer) Render(ctx context.Context, opts RenderOptions) (*Frame, RenderStats, error) {
	config := r.camera.Config()
	stats := RenderStats{
		Width:       config.Width,
		Height:      config.Height,
		TotalPixels: config.Width * config.Height,
	}

	r.logger.Printf("Rendering %s at %dx%d\n", r.scene.Name, config.Width, config.Height)
	start := time.Now()

	frame := NewFrame(config.Width, config.Height)
	for y := 0; y < config.Height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		for x := 0; x < config.Width; x++ {
			pixel, hit := r.shadePixel(x, y)
			frame.Set(x, y, pixel)
			if hit {
				stats.HitPixels++
			} else {
				stats.MissPixels++
			}
		}
		if opts.OnScanline != nil {
			opts.OnScanline(y+1, config.Height)
		}
	}

	stats.Duration = time.Since(start)
	if seconds := stats.Duration.Seconds(); seconds > 0 {
		stats.PixelsPerSecond = float64(stats.TotalPixels) / seconds
	}
	r.logger.Printf("Rendered %d pixels in %v (%.0f px/s, %.1f%% hit)\n",
		stats.TotalPixels, stats.Duration, stats.PixelsPerSecond, stats.HitRate()*100)

	return frame, stats, nil
}

// shadePixel traces the camera ray for pixel (x, y) and returns its
// color and whether the ray hit anything
func (r *Renderer) shadePixel(x, y int) (core.Color, bool) {
	ray := r.camera.RayThrough(x, y)

	var nearest geometry.Surface
	var nearestPoint core.Vec3
	nearestDistSq := math.MaxFloat64

	for _, surf := range r.scene.Surfaces {
		point, ok := surf.Intersection(ray)
		if !ok {
			continue
		}
		distSq := point.Subtract(ray.Origin).LengthSquared()
		if distSq < nearestDistSq {
			nearest = surf
			nearestPoint = point
			nearestDistSq = distSq
		}
	}

	if nearest == nil {
		return r.scene.Background, false
	}
	return r.integrator.Shade(nearest, r.scene.Lights, ray.Origin, nearestPoint), true
}
