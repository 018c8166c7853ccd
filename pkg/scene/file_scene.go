package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewFileScene creates a scene from a JSON scene file
func NewFileScene(path string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	cameraConfig := geometry.CameraConfig{
		Center:    vec3From(sf.Camera.Center),
		Direction: vec3From(sf.Camera.Direction),
		Up:        vec3From(sf.Camera.Up),
		Width:     sf.Camera.Width,
		Height:    sf.Camera.Height,
		VFov:      sf.Camera.VFov,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	surfaces := make([]geometry.Surface, 0, len(sf.Spheres))
	for _, sphere := range sf.Spheres {
		mat := material.NewColoredMaterial(colorFrom(sphere.Material.Color),
			sphere.Material.Ambient, sphere.Material.Diffuse, sphere.Material.Shininess)
		if sphere.Material.Specular != nil {
			mat.SetSpecular(*sphere.Material.Specular)
		}
		surfaces = append(surfaces, geometry.NewSphere(vec3From(sphere.Center), sphere.Radius, mat))
	}

	sceneLights := make([]lights.Light, 0, len(sf.Lights))
	for _, light := range sf.Lights {
		sceneLights = append(sceneLights,
			lights.NewLight(vec3From(light.Position), light.Intensity, colorFrom(light.Color)))
	}

	return &Scene{
		Name:         sf.Name,
		CameraConfig: cameraConfig,
		Surfaces:     surfaces,
		Lights:       sceneLights,
		Background:   colorFrom(sf.Background),
	}, nil
}

// SaveScene writes a scene as a JSON scene file. Only sphere surfaces
// have a file representation; any other surface kind is an error.
func SaveScene(path string, s *Scene) error {
	sf := &loaders.SceneFile{
		Name:       s.Name,
		Background: quadFrom(s.Background),
		Camera: loaders.CameraFile{
			Center:    tripleFrom(s.CameraConfig.Center),
			Direction: tripleFrom(s.CameraConfig.Direction),
			Up:        tripleFrom(s.CameraConfig.Up),
			Width:     s.CameraConfig.Width,
			Height:    s.CameraConfig.Height,
			VFov:      s.CameraConfig.VFov,
		},
	}

	for i, surf := range s.Surfaces {
		sphere, ok := surf.(*geometry.Sphere)
		if !ok {
			return fmt.Errorf("surface %d (%T) has no scene file representation", i, surf)
		}
		mat := sphere.Material()
		specular := mat.Specular()
		sf.Spheres = append(sf.Spheres, loaders.SphereFile{
			Center: tripleFrom(sphere.Position()),
			Radius: sphere.Radius(),
			Material: loaders.MaterialFile{
				Color:     quadFrom(mat.Color),
				Ambient:   mat.Ambient(),
				Diffuse:   mat.Diffuse(),
				Specular:  &specular,
				Shininess: mat.Shininess(),
			},
		})
	}

	for _, light := range s.Lights {
		sf.Lights = append(sf.Lights, loaders.LightFile{
			Position:  tripleFrom(light.Position),
			Intensity: light.Intensity,
			Color:     quadFrom(light.Color),
		})
	}

	return loaders.WriteSceneFile(path, sf)
}

func vec3From(triple [3]float64) core.Vec3 {
	return core.NewVec3(triple[0], triple[1], triple[2])
}

func tripleFrom(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorFrom(quad [4]uint8) core.Color {
	return core.NewColor(quad[0], quad[1], quad[2], quad[3])
}

func quadFrom(c core.Color) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}
