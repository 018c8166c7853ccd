// Package lights provides point light sources for shading.
package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Light is a point light source. Intensity is expected to be positive;
// scene loaders validate before constructing one.
type Light struct {
	Position  core.Vec3
	Intensity float64
	Color     core.Color
}

// NewLight creates a point light at the given position
func NewLight(position core.Vec3, intensity float64, color core.Color) Light {
	return Light{Position: position, Intensity: intensity, Color: color}
}

// InverseSquareLaw returns the light intensity arriving at a point.
// A point at the light position yields +Inf, which shading clamps.
func (l Light) InverseSquareLaw(point core.Vec3) float64 {
	return l.Intensity / l.Position.Subtract(point).LengthSquared()
}
