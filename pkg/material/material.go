package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material describes how a surface responds to light through the
// classic ambient, diffuse and specular coefficients plus a specular
// exponent (shininess).
//
// The diffuse and specular coefficients always sum to one: setting
// either recomputes the other. Ambient stays in [0, 1] and shininess
// is any non-negative value. Every setter clamps, none can fail.
type Material struct {
	Color core.Color

	ambient   float64
	diffuse   float64
	specular  float64
	shininess float64
}

// DefaultMaterial creates a white, fully diffuse material with no
// ambient or specular component
func DefaultMaterial() *Material {
	return &Material{Color: core.White, diffuse: 1}
}

// NewMaterial creates a white material from ambient, diffuse and
// shininess; the specular coefficient is derived as 1 - diffuse
func NewMaterial(ambient, diffuse, shininess float64) *Material {
	return NewColoredMaterial(core.White, ambient, diffuse, shininess)
}

// NewColoredMaterial creates a material with an explicit color
func NewColoredMaterial(color core.Color, ambient, diffuse, shininess float64) *Material {
	m := &Material{Color: color}
	m.SetAmbient(ambient)
	m.SetDiffuse(diffuse)
	m.SetShininess(shininess)
	return m
}

// Ambient returns the ambient coefficient
func (m *Material) Ambient() float64 {
	return m.ambient
}

// SetAmbient sets the ambient coefficient, clamped to [0, 1]
func (m *Material) SetAmbient(ambient float64) {
	m.ambient = clamp01(ambient)
}

// Diffuse returns the diffuse coefficient
func (m *Material) Diffuse() float64 {
	return m.diffuse
}

// SetDiffuse sets the diffuse coefficient, clamped to [0, 1], and
// rebalances the specular coefficient so the two sum to one
func (m *Material) SetDiffuse(diffuse float64) {
	m.diffuse = clamp01(diffuse)
	m.specular = 1 - m.diffuse
}

// Specular returns the specular coefficient
func (m *Material) Specular() float64 {
	return m.specular
}

// SetSpecular sets the specular coefficient, clamped to [0, 1], and
// rebalances the diffuse coefficient so the two sum to one
func (m *Material) SetSpecular(specular float64) {
	m.specular = clamp01(specular)
	m.diffuse = 1 - m.specular
}

// Shininess returns the specular exponent
func (m *Material) Shininess() float64 {
	return m.shininess
}

// SetShininess sets the specular exponent, clamped to be non-negative
func (m *Material) SetShininess(shininess float64) {
	m.shininess = max(0, shininess)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
