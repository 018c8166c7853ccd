package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Surface is the capability set shared by every renderable shape:
// placement, ray intersection, surface normals and material access.
type Surface interface {
	// Position returns the reference position of the surface
	Position() core.Vec3

	// SetPosition moves the surface to a new reference position
	SetPosition(position core.Vec3)

	// Intersection returns the nearest point at ray parameter t >= 0
	// where the ray meets the surface. The boolean is false when the
	// ray misses; a miss is a normal outcome, not a fault.
	Intersection(ray core.Ray) (core.Vec3, bool)

	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// Material returns the material of the surface
	Material() *material.Material

	// SetMaterial replaces the material of the surface
	SetMaterial(mat *material.Material)
}
