package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewShowcaseScene creates a grid of spheres sweeping the material
// parameters: columns trade diffuse for specular, rows raise shininess
func NewShowcaseScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:    core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0, 1),
		Up:        core.NewVec3(0, 1, 0),
		Width:     800,
		Height:    800,
		VFov:      60,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	palette := []core.Color{core.Red, core.Green, core.Blue, core.Yellow, core.Magenta}
	shininess := []float64{2, 8, 32, 128, 512}

	const (
		rows    = 5
		cols    = 5
		spacing = 1.2
		radius  = 0.45
	)

	surfaces := make([]geometry.Surface, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			mat := material.NewColoredMaterial(palette[(row+col)%len(palette)], 0.1, 1, shininess[row])
			// Trade diffuse for specular across the row
			mat.SetSpecular(float64(col) / float64(cols-1))

			center := core.NewVec3(
				(float64(col)-float64(cols-1)/2)*spacing,
				(float64(rows-1)/2-float64(row))*spacing,
				6,
			)
			surfaces = append(surfaces, geometry.NewSphere(center, radius, mat))
		}
	}

	return &Scene{
		Name:         "showcase",
		CameraConfig: cameraConfig,
		Surfaces:     surfaces,
		Lights: []lights.Light{
			lights.NewLight(core.NewVec3(0, 4, 2), 8, core.White),
			lights.NewLight(core.NewVec3(-4, -2, 3), 3, core.Magenta),
			lights.NewLight(core.NewVec3(4, 0, 4), 2, core.Yellow),
		},
		Background: core.NewColorRGB(16, 16, 24),
	}
}
