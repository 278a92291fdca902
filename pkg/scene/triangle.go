// Package scene holds the static geometry the ray caster renders: flat
// coloured triangles and point lights, the built-in Cornell box, and
// glTF/STL import and export.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/cornell/pkg/math3d"
)

// Triangle is a flat-coloured triangular surface.
//
// Normal is derived from the vertices as normalize((V2-V0) × (V1-V0)).
// Anything that moves a vertex must call RecomputeNormal afterwards; the
// helpers on Triangle do so themselves.
type Triangle struct {
	V0, V1, V2 math3d.Vec3
	Normal     math3d.Vec3
	Color      math3d.Vec3 // RGB in 0-1 range
}

// NewTriangle creates a triangle and derives its unit normal.
// A zero-area triangle gets a NaN normal; see Degenerate.
func NewTriangle(v0, v1, v2, color math3d.Vec3) Triangle {
	t := Triangle{V0: v0, V1: v1, V2: v2, Color: color}
	t.RecomputeNormal()
	return t
}

// RecomputeNormal re-derives Normal from the current vertices.
func (t *Triangle) RecomputeNormal() {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	t.Normal = e2.Cross(e1).Normalize()
}

// Edges returns the two edge vectors V1-V0 and V2-V0.
func (t *Triangle) Edges() (e1, e2 math3d.Vec3) {
	return t.V1.Sub(t.V0), t.V2.Sub(t.V0)
}

// Area returns the surface area.
func (t *Triangle) Area() float32 {
	e1, e2 := t.Edges()
	return e1.Cross(e2).Len() / 2
}

// Centroid returns the average of the three vertices.
func (t *Triangle) Centroid() math3d.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3)
}

// Degenerate reports whether the triangle has no usable normal.
func (t *Triangle) Degenerate() bool {
	return !math3d.IsFinite(t.Normal) || math32.Abs(t.Normal.Len()-1) > 1e-3
}

// Bounds returns the triangle's bounding box.
func (t *Triangle) Bounds() math3d.AABB {
	return math3d.BoundsOf(t.V0, t.V1, t.V2)
}

// Rescale maps the vertices from a [0, size]^3 volume into [-1, 1]^3 and
// recomputes the normal.
func (t *Triangle) Rescale(size float32) {
	t.V0 = math3d.Fit(t.V0, size)
	t.V1 = math3d.Fit(t.V1, size)
	t.V2 = math3d.Fit(t.V2, size)
	t.RecomputeNormal()
}

// Transform applies m to every vertex and recomputes the normal.
func (t *Triangle) Transform(m math3d.Mat4) {
	t.V0 = math3d.MulVec3(m, t.V0)
	t.V1 = math3d.MulVec3(m, t.V1)
	t.V2 = math3d.MulVec3(m, t.V2)
	t.RecomputeNormal()
}
