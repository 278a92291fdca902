package render

import (
	"github.com/taigrr/cornell/pkg/math3d"
)

// Camera is a fixed pinhole camera looking down +z. The image plane spans
// [-1, 1] in both axes at unit distance from Origin, so there is no field
// of view or orientation to configure.
type Camera struct {
	Origin math3d.Vec3
}

// DefaultCamera returns the camera at (0, 0, -2), in front of the open side
// of the Cornell box.
func DefaultCamera() Camera {
	return Camera{Origin: math3d.V3(0, 0, -2)}
}

// Direction returns the normalised ray direction through the centre of
// pixel (x, y) of a width x height image. Row 0 is the top of the frame.
func (c Camera) Direction(x, y, width, height int) math3d.Vec3 {
	u := (float32(x)+0.5)/float32(width)*2 - 1
	v := 1 - 2*(float32(y)+0.5)/float32(height)
	return math3d.V3(u, v, 1).Normalize()
}

// Ray returns the camera ray through pixel (x, y).
func (c Camera) Ray(x, y, width, height int) Ray {
	return Ray{Origin: c.Origin, Direction: c.Direction(x, y, width, height)}
}
