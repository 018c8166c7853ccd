package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Phong shades points with the Phong reflection model: an ambient term,
// a diffuse term proportional to the angle between surface normal and
// light, and a specular highlight sharpened by the material shininess.
// Light falls off with the inverse square of distance.
type Phong struct{}

// NewPhong creates a Phong integrator
func NewPhong() *Phong {
	return &Phong{}
}

// LightIntensity returns the illumination a single light contributes at
// a surface point, in [0, 1]
func (p *Phong) LightIntensity(surf geometry.Surface, light lights.Light, cameraPos, point core.Vec3) float64 {
	lightDir := light.Position.Subtract(point).Normalize()
	normal := surf.NormalAt(point)

	angle := normal.Dot(lightDir)
	if angle < 0 {
		// Light is behind the surface
		return 0
	}

	reflectDir := lightDir.Mirror(normal)
	viewDir := point.Subtract(cameraPos).Normalize()
	// The reflection of an even-powered highlight is sign-insensitive;
	// taking the magnitude keeps odd and fractional exponents defined
	specularTerm := math.Pow(math.Abs(reflectDir.Dot(viewDir)), surf.Material().Shininess())

	mat := surf.Material()
	intensity := mat.Ambient() + mat.Diffuse()*angle + mat.Specular()*specularTerm
	intensity *= light.InverseSquareLaw(point)

	return math.Min(1, intensity)
}

// Shade accumulates the contribution of every light. Each light blends
// its color with the material color, scales by its intensity at the
// point, and adds into the pixel with saturating channel arithmetic.
func (p *Phong) Shade(surf geometry.Surface, sceneLights []lights.Light, cameraPos, point core.Vec3) core.Color {
	pixel := core.Color{}
	for _, light := range sceneLights {
		contribution := light.Color.
			Blend(surf.Material().Color).
			Scale(p.LightIntensity(surf, light, cameraPos, point))
		pixel = pixel.Add(contribution)
	}
	return pixel
}
