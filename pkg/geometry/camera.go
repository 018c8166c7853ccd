package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig holds the parameters needed to construct a camera
type CameraConfig struct {
	Center    core.Vec3 // Camera position
	Direction core.Vec3 // View direction, need not be normalized
	Up        core.Vec3 // Up direction
	Width     int       // Image width in pixels
	Height    int       // Image height in pixels
	VFov      float64   // Vertical field of view in degrees
}

// MergeCameraConfig merges override values into a base config.
// Zero-valued override fields keep the base values.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Center != (core.Vec3{}) {
		merged.Center = override.Center
	}
	if override.Direction != (core.Vec3{}) {
		merged.Direction = override.Direction
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.Height != 0 {
		merged.Height = override.Height
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	return merged
}

// Camera generates one ray per pixel, from its position through the
// center of each pixel on the view plane. Pixel (0, 0) is the top-left
// corner of the image. Resizing means building a new camera from an
// amended config.
type Camera struct {
	config     CameraConfig
	forward    core.Vec3
	right      core.Vec3
	up         core.Vec3
	halfWidth  float64
	halfHeight float64
}

// NewCamera builds the view basis from a camera configuration
func NewCamera(config CameraConfig) *Camera {
	// Degenerate sizes happen while a window is being resized away
	if config.Width < 1 {
		config.Width = 1
	}
	if config.Height < 1 {
		config.Height = 1
	}

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	aspect := float64(config.Width) / float64(config.Height)

	forward := config.Direction.Normalize()
	right := config.Up.Cross(forward).Normalize()
	up := forward.Cross(right)

	return &Camera{
		config:     config,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  aspect * halfHeight,
		halfHeight: halfHeight,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.config.Center
}

// RayThrough returns a normalized ray from the camera through the
// center of pixel (x, y)
func (c *Camera) RayThrough(x, y int) core.Ray {
	u := (float64(x)+0.5)/float64(c.config.Width)*2 - 1
	v := 1 - (float64(y)+0.5)/float64(c.config.Height)*2

	direction := c.forward.
		Add(c.right.Multiply(u * c.halfWidth)).
		Add(c.up.Multiply(v * c.halfHeight)).
		Normalize()

	return core.NewRay(c.config.Center, direction)
}
