package math3d

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a 4x4 matrix stored in column-major order (mgl32 layout).
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
type Mat4 = mgl32.Mat4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return mgl32.Ident4()
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform(s float32) Mat4 {
	return mgl32.Scale3D(s, s, s)
}

// MulVec3 transforms a Vec3 as a point (w=1).
func MulVec3(m Mat4, v Vec3) Vec3 {
	return mgl32.TransformCoordinate(v, m)
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func MulVec3Dir(m Mat4, v Vec3) Vec3 {
	return mgl32.TransformNormal(v, m)
}

// FitToUnitCube returns the transform that centres b on the origin and
// scales its largest extent to 2, so the box fits inside [-1, 1]^3.
// An empty or flat-to-a-point box yields the identity.
func FitToUnitCube(b AABB) Mat4 {
	size := b.Size()
	maxDim := max(size[0], size[1], size[2])
	if b.Empty() || maxDim <= 0 {
		return Identity()
	}
	s := 2 / maxDim
	return ScaleUniform(s).Mul4(Translate(b.Center().Mul(-1)))
}
