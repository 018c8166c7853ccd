package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere defined by a center point and radius
type Sphere struct {
	center   core.Vec3
	radius   float64
	material *material.Material
}

// NewSphere creates a new sphere. A negative radius clamps to zero
// and a nil material falls back to the default material.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	if mat == nil {
		mat = material.DefaultMaterial()
	}
	return &Sphere{center: center, radius: max(0, radius), material: mat}
}

// Position returns the center of the sphere
func (s *Sphere) Position() core.Vec3 {
	return s.center
}

// SetPosition moves the center of the sphere
func (s *Sphere) SetPosition(position core.Vec3) {
	s.center = position
}

// Radius returns the radius of the sphere
func (s *Sphere) Radius() float64 {
	return s.radius
}

// SetRadius sets the radius of the sphere, clamping negatives to zero
func (s *Sphere) SetRadius(radius float64) {
	s.radius = max(0, radius)
}

// Material returns the material of the sphere
func (s *Sphere) Material() *material.Material {
	return s.material
}

// SetMaterial replaces the material of the sphere
func (s *Sphere) SetMaterial(mat *material.Material) {
	s.material = mat
}

// Intersection finds the nearest intersection of the ray with the
// sphere at parameter t >= 0, solving the quadratic with the half-b
// optimization.
func (s *Sphere) Intersection(ray core.Ray) (core.Vec3, bool) {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Vec3{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Prefer the near root; fall back to the far root when the origin
	// is inside the sphere. Both negative means the sphere is behind
	// the ray.
	t := (-halfB - sqrtD) / a
	if t < 0 {
		t = (-halfB + sqrtD) / a
	}
	if t < 0 {
		return core.Vec3{}, false
	}

	return ray.At(t), true
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.center).Normalize()
}
