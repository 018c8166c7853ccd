// Package loaders reads and writes the on-disk scene and image formats.
package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SceneFile is the JSON scene schema. Vectors are [x, y, z] triples,
// colors are [r, g, b, a] quadruples.
type SceneFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Background  [4]uint8     `json:"background"`
	Camera      CameraFile   `json:"camera"`
	Spheres     []SphereFile `json:"spheres"`
	Lights      []LightFile  `json:"lights"`
}

// CameraFile describes the camera in a scene file
type CameraFile struct {
	Center    [3]float64 `json:"center"`
	Direction [3]float64 `json:"direction"`
	Up        [3]float64 `json:"up"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	VFov      float64    `json:"vfov"`
}

// SphereFile describes one sphere in a scene file
type SphereFile struct {
	Center   [3]float64   `json:"center"`
	Radius   float64      `json:"radius"`
	Material MaterialFile `json:"material"`
}

// MaterialFile describes a Phong material. Specular is optional; when
// absent it is derived as 1 - diffuse.
type MaterialFile struct {
	Color     [4]uint8 `json:"color"`
	Ambient   float64  `json:"ambient"`
	Diffuse   float64  `json:"diffuse"`
	Specular  *float64 `json:"specular,omitempty"`
	Shininess float64  `json:"shininess"`
}

// LightFile describes one point light in a scene file
type LightFile struct {
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
	Color     [4]uint8   `json:"color"`
}

// LoadSceneFile reads and validates a JSON scene file. A missing name
// defaults to the file name without its extension.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := sf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
	}
	return &sf, nil
}

// WriteSceneFile writes a scene file as indented JSON
func WriteSceneFile(path string, sf *SceneFile) error {
	if err := sf.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid scene: %w", err)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// Validate checks every field against its allowed range
func (sf *SceneFile) Validate() error {
	if sf.Name == "" {
		return fmt.Errorf("name: must not be empty")
	}
	if err := sf.Camera.validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	for i, sphere := range sf.Spheres {
		if err := sphere.validate(); err != nil {
			return fmt.Errorf("spheres[%d]: %w", i, err)
		}
	}
	for i, light := range sf.Lights {
		if err := light.validate(); err != nil {
			return fmt.Errorf("lights[%d]: %w", i, err)
		}
	}
	return nil
}

func (cf *CameraFile) validate() error {
	if cf.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", cf.Width)
	}
	if cf.Height < 1 {
		return fmt.Errorf("height must be positive, got %d", cf.Height)
	}
	if cf.VFov <= 0 || cf.VFov >= 180 {
		return fmt.Errorf("vfov must be in (0, 180), got %v", cf.VFov)
	}
	if cf.Direction == ([3]float64{}) {
		return fmt.Errorf("direction must not be the zero vector")
	}
	if cf.Up == ([3]float64{}) {
		return fmt.Errorf("up must not be the zero vector")
	}
	return nil
}

func (sp *SphereFile) validate() error {
	if sp.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", sp.Radius)
	}
	if err := sp.Material.validate(); err != nil {
		return fmt.Errorf("material: %w", err)
	}
	return nil
}

func (mf *MaterialFile) validate() error {
	if mf.Ambient < 0 || mf.Ambient > 1 {
		return fmt.Errorf("ambient must be in [0, 1], got %v", mf.Ambient)
	}
	if mf.Diffuse < 0 || mf.Diffuse > 1 {
		return fmt.Errorf("diffuse must be in [0, 1], got %v", mf.Diffuse)
	}
	if mf.Specular != nil && (*mf.Specular < 0 || *mf.Specular > 1) {
		return fmt.Errorf("specular must be in [0, 1], got %v", *mf.Specular)
	}
	if mf.Shininess < 0 {
		return fmt.Errorf("shininess must not be negative, got %v", mf.Shininess)
	}
	return nil
}

func (lf *LightFile) validate() error {
	if lf.Intensity <= 0 {
		return fmt.Errorf("intensity must be positive, got %v", lf.Intensity)
	}
	return nil
}
