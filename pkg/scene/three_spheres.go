package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewThreeSpheresScene creates the classic demo scene: three glossy
// spheres under three cyan lights on a green backdrop
func NewThreeSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:    core.NewVec3(0, 0, 0), // Camera at the origin
		Direction: core.NewVec3(0, 0, 1), // Looking down +Z
		Up:        core.NewVec3(0, 1, 0), // Standard up direction
		Width:     600,
		Height:    600,
		VFov:      60,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	// Half diffuse, half specular, tight highlights
	glossy := func() *material.Material {
		m := material.NewMaterial(0.1, 1, 50)
		m.SetSpecular(0.5)
		return m
	}

	return &Scene{
		Name:         "three-spheres",
		CameraConfig: cameraConfig,
		Surfaces: []geometry.Surface{
			geometry.NewSphere(core.NewVec3(0, 0, 3), 1, glossy()),
			geometry.NewSphere(core.NewVec3(1, 1, 4), 0.5, glossy()),
			geometry.NewSphere(core.NewVec3(-1, -1, 5), 0.75, glossy()),
		},
		Lights: []lights.Light{
			lights.NewLight(core.NewVec3(-1, 0, -1), 4, core.Cyan),
			lights.NewLight(core.NewVec3(1, 0, 1), 1, core.Cyan),
			lights.NewLight(core.NewVec3(2, 0, 1), 2, core.Cyan),
		},
		Background: core.Green,
	}
}
