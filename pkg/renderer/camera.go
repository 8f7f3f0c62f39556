package renderer

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Camera generates primary rays from a position/look-at pair using a
// standard right-handed basis with Y as world up
type Camera struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	scale   float64
	aspect  float64
	width   int
	height  int
}

// NewCamera creates a camera for the given viewpoint and image dimensions.
// fovDegrees is the vertical field of view.
func NewCamera(position, lookAt core.Vec3, fovDegrees float64, width, height int) *Camera {
	forward := lookAt.Subtract(position).Normalize()
	worldUp := core.NewVec3(0, 1, 0)

	right := forward.Cross(worldUp).Normalize()
	// Looking straight up or down degenerates the cross product; fall back
	// to a fixed horizontal axis
	if right.Length() < 0.1 {
		if math.Abs(forward.X) < 0.9 {
			right = core.NewVec3(1, 0, 0)
		} else {
			right = core.NewVec3(0, 0, 1)
		}
	}
	up := right.Cross(forward).Normalize()

	return &Camera{
		origin:  position,
		forward: forward,
		right:   right,
		up:      up,
		scale:   math.Tan(fovDegrees * 0.5 * math.Pi / 180.0),
		aspect:  float64(width) / float64(height),
		width:   width,
		height:  height,
	}
}

// GetRay generates the primary ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(x, y int) core.Ray {
	px := (2.0*(float64(x)+0.5)/float64(c.width) - 1.0) * c.scale * c.aspect
	py := (1.0 - 2.0*(float64(y)+0.5)/float64(c.height)) * c.scale

	direction := c.right.Multiply(px).
		Add(c.up.Multiply(py)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.origin, direction)
}
