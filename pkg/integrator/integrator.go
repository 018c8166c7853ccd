// Package integrator provides shading models for computing pixel colors
// at ray-surface intersection points.
package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Integrator computes the color of a surface point under a set of lights
type Integrator interface {
	// Shade returns the pixel color at a point on a surface, as seen
	// from cameraPos, lit by the given lights
	Shade(surf geometry.Surface, sceneLights []lights.Light, cameraPos, point core.Vec3) core.Color
}
