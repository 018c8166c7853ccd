// Package scene provides scene containers, the built-in demo scenes,
// and scene discovery.
package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. Renders treat
// it as read-only; mutate between passes, not during one.
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig
	Surfaces     []geometry.Surface // Objects in the scene
	Lights       []lights.Light     // Lights in the scene
	Background   core.Color         // Color for rays that hit nothing
}
