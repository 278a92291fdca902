// Package math3d provides the float32 vector math used by the ray caster.
// Vectors and matrices are the mgl32 types; this package adds the small set
// of helpers the renderer and scene loaders share.
package math3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 represents a 3D vector of float32 components.
type Vec3 = mgl32.Vec3

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// One3 returns the vector (1, 1, 1).
func One3() Vec3 {
	return Vec3{1, 1, 1}
}

// Forward returns the camera forward vector (0, 0, 1).
func Forward() Vec3 {
	return Vec3{0, 0, 1}
}

// Min returns the component-wise minimum.
func Min(a, b Vec3) Vec3 {
	return Vec3{
		math32.Min(a[0], b[0]),
		math32.Min(a[1], b[1]),
		math32.Min(a[2], b[2]),
	}
}

// Max returns the component-wise maximum.
func Max(a, b Vec3) Vec3 {
	return Vec3{
		math32.Max(a[0], b[0]),
		math32.Max(a[1], b[1]),
		math32.Max(a[2], b[2]),
	}
}

// Clamp01 clamps every component to [0, 1].
// NaN components become 0.
func Clamp01(v Vec3) Vec3 {
	for i := range v {
		switch {
		case math32.IsNaN(v[i]) || v[i] < 0:
			v[i] = 0
		case v[i] > 1:
			v[i] = 1
		}
	}
	return v
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether a and b differ by at most eps per component.
func ApproxEqual(a, b Vec3, eps float32) bool {
	for i := range a {
		if !(math32.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// Fit maps a point of a [0, size]^3 volume into [-1, 1]^3.
// Each component is computed as c*2/size - 1 so that 0 and size land exactly
// on the cube faces.
func Fit(v Vec3, size float32) Vec3 {
	return Vec3{
		v[0]*2/size - 1,
		v[1]*2/size - 1,
		v[2]*2/size - 1,
	}
}
