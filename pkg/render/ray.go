// Package render casts one ray per pixel against a triangle list and
// shades the nearest hit into an RGBA framebuffer.
package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/cornell/pkg/math3d"
	"github.com/taigrr/cornell/pkg/scene"
)

// Epsilon guards every division in the intersection test. It also bounds
// accepted distances to (Epsilon, 1/Epsilon).
const Epsilon float32 = 1e-7

// Ray is a half-line Origin + t*Direction, t >= 0.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersection is a ray/triangle hit point and its ray parameter.
type Intersection struct {
	Position math3d.Vec3
	Distance float32
}

// Intersect tests a ray against one triangle using the Möller-Trumbore
// algorithm. The direction need not be normalised. It returns false for
// misses, rays parallel to the triangle's plane, zero-area triangles and
// hits outside (Epsilon, 1/Epsilon).
func Intersect(origin, dir math3d.Vec3, tri *scene.Triangle) (Intersection, bool) {
	e1 := tri.V1.Sub(tri.V0)
	e2 := tri.V2.Sub(tri.V0)

	h := dir.Cross(e2)
	a := e1.Dot(h)
	// NaN fails every comparison below, so reject it explicitly too.
	if !(math32.Abs(a) >= Epsilon) {
		return Intersection{}, false
	}

	f := 1 / a
	s := origin.Sub(tri.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	q := s.Cross(e1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	t := f * e2.Dot(q)
	if t <= Epsilon || t >= 1/Epsilon {
		return Intersection{}, false
	}

	return Intersection{
		Position: tri.V0.Add(e1.Mul(u)).Add(e2.Mul(v)),
		Distance: t,
	}, true
}

// Intersect tests the ray against one triangle.
func (r Ray) Intersect(tri *scene.Triangle) (Intersection, bool) {
	return Intersect(r.Origin, r.Direction, tri)
}
