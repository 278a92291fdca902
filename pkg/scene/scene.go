package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/cornell/pkg/math3d"
)

var (
	// ErrDegenerateTriangle marks a triangle with zero area.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	// ErrNoTriangles is returned when a scene source yields no geometry.
	ErrNoTriangles = errors.New("scene has no triangles")
)

// PointLight is an omnidirectional light.
type PointLight struct {
	Position  math3d.Vec3
	Color     math3d.Vec3 // RGB in 0-1 range
	Intensity float32
}

// DefaultLight is the single white light placed in every built-in scene.
func DefaultLight() PointLight {
	return PointLight{
		Position:  math3d.V3(-0.3, 0.5, -0.7),
		Color:     math3d.V3(1, 1, 1),
		Intensity: 2,
	}
}

// Scene is an ordered triangle list plus point lights.
// It is read-only once rendering starts.
type Scene struct {
	Triangles []Triangle
	Lights    []PointLight
}

// New creates a scene from the given triangles and lights.
func New(triangles []Triangle, lights ...PointLight) *Scene {
	return &Scene{Triangles: triangles, Lights: lights}
}

// TriangleCount returns the number of triangles.
func (s *Scene) TriangleCount() int {
	return len(s.Triangles)
}

// Bounds returns the bounding box of all triangles.
// An empty scene returns an empty box.
func (s *Scene) Bounds() math3d.AABB {
	b := math3d.EmptyAABB()
	for i := range s.Triangles {
		b = b.Union(s.Triangles[i].Bounds())
	}
	return b
}

// Rescale maps every triangle from [0, size]^3 into [-1, 1]^3.
func (s *Scene) Rescale(size float32) {
	for i := range s.Triangles {
		s.Triangles[i].Rescale(size)
	}
}

// Transform applies m to every triangle.
// Lights are left in place; they are authored in the final frame.
func (s *Scene) Transform(m math3d.Mat4) {
	for i := range s.Triangles {
		s.Triangles[i].Transform(m)
	}
}

// Validate reports every degenerate triangle. The scene stays renderable:
// degenerate triangles are simply never hit.
func (s *Scene) Validate() error {
	var errs []error
	for i := range s.Triangles {
		if s.Triangles[i].Degenerate() {
			errs = append(errs, fmt.Errorf("triangle %d: %w", i, ErrDegenerateTriangle))
		}
	}
	return errors.Join(errs...)
}
