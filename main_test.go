package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)

	got := defaultOutputPath("three-spheres", now)
	want := filepath.Join("output", "three-spheres", "render_20240315_093005.png")
	if got != want {
		t.Errorf("defaultOutputPath = %q, want %q", got, want)
	}
}

func decodeOutput(t *testing.T, path string) (width, height int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRun_WritesPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "render.png")

	err := run(cliOptions{
		sceneID:   "three-spheres",
		scenesDir: t.TempDir(),
		output:    output,
		width:     8,
		height:    8,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	width, height := decodeOutput(t, output)
	if width != 8 || height != 8 {
		t.Errorf("Output size = %dx%d, want 8x8", width, height)
	}
}

func TestRun_LabelledPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "render.png")

	err := run(cliOptions{
		sceneID:   "showcase",
		scenesDir: t.TempDir(),
		output:    output,
		width:     8,
		height:    8,
		label:     true,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	width, height := decodeOutput(t, output)
	if width != 8 {
		t.Errorf("Output width = %d, want 8", width)
	}
	if height <= 8 {
		t.Errorf("Output height = %d, want the label strip to extend it", height)
	}
}

func TestRun_UnknownScene(t *testing.T) {
	err := run(cliOptions{sceneID: "nonexistent", scenesDir: t.TempDir()})
	if err == nil {
		t.Fatal("Expected an error for an unknown scene")
	}
	if !strings.Contains(err.Error(), "unknown scene") {
		t.Errorf("Error = %q, want it to mention the unknown scene", err)
	}
}

func TestRun_Timeout(t *testing.T) {
	err := run(cliOptions{
		sceneID:   "three-spheres",
		scenesDir: t.TempDir(),
		output:    filepath.Join(t.TempDir(), "never.png"),
		timeout:   time.Nanosecond,
	})
	if err == nil {
		t.Fatal("Expected the render to be cut off by the timeout")
	}
}
