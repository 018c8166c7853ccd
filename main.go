package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

type cliOptions struct {
	sceneID   string
	scenesDir string
	output    string
	width     int
	height    int
	label     bool
	tui       bool
	timeout   time.Duration
}

func main() {
	var opts cliOptions
	flag.StringVar(&opts.sceneID, "scene", "three-spheres", "Scene to render (see -list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.StringVar(&opts.scenesDir, "scenes-dir", "scenes", "Directory searched for JSON scene files")
	flag.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	flag.BoolVar(&opts.label, "label", false, "Annotate the PNG with the scene name and render time")
	flag.BoolVar(&opts.tui, "tui", false, "Show an interactive progress UI")
	flag.DurationVar(&opts.timeout, "timeout", 0, "Abort the render after this long (0 = no limit)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes(opts.scenesDir)
		return
	}
	if *list {
		printScenes(opts.scenesDir)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes(scenesDir string) {
	infos, err := scene.ListScenes(scenesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Available scenes:")
	for _, info := range infos {
		fmt.Printf("  %-16s %s (%s)\n", info.ID, info.Description, info.Source)
	}
}

func run(opts cliOptions) error {
	s, err := scene.BuildScene(opts.sceneID, opts.scenesDir,
		geometry.CameraConfig{Width: opts.width, Height: opts.height})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	var frame *renderer.Frame
	var stats renderer.RenderStats
	if opts.tui {
		frame, stats, err = renderWithTUI(ctx, s)
	} else {
		frame, stats, err = renderWithLog(ctx, s)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	output := opts.output
	if output == "" {
		output = defaultOutputPath(s.Name, time.Now())
	}

	if opts.label {
		text := fmt.Sprintf("%s %dx%d in %v",
			s.Name, stats.Width, stats.Height, stats.Duration.Round(time.Millisecond))
		err = loaders.WriteAnnotatedPNG(output, frame.Image(), text)
	} else {
		err = loaders.WritePNG(output, frame.Image())
	}
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}

// renderWithLog renders with scanline progress logged at roughly every
// tenth of the image
func renderWithLog(ctx context.Context, s *scene.Scene) (*renderer.Frame, renderer.RenderStats, error) {
	logger := renderer.NewDefaultLogger()
	step := s.CameraConfig.Height / 10
	if step < 1 {
		step = 1
	}

	r := renderer.NewRenderer(s, logger)
	return r.Render(ctx, renderer.RenderOptions{
		OnScanline: func(line, height int) {
			if line%step == 0 || line == height {
				logger.Printf("  %3.0f%% (%d/%d lines)\n",
					float64(line)/float64(height)*100, line, height)
			}
		},
	})
}

func defaultOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}
