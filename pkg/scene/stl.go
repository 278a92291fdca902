package scene

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/taigrr/cornell/pkg/math3d"
)

// toV3 widens a float32 vector to sdfx's float64 vector.
func toV3(v math3d.Vec3) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// SDFTriangles converts the scene's triangles to sdfx triangles.
// V1 and V2 are swapped so the counter-clockwise STL normal matches
// Triangle.Normal. Degenerate triangles are skipped.
func SDFTriangles(s *Scene) []*sdf.Triangle3 {
	out := make([]*sdf.Triangle3, 0, len(s.Triangles))
	for i := range s.Triangles {
		t := &s.Triangles[i]
		if t.Degenerate() {
			continue
		}
		out = append(out, &sdf.Triangle3{toV3(t.V0), toV3(t.V2), toV3(t.V1)})
	}
	return out
}

// SaveSTL writes the scene geometry to an STL file.
func SaveSTL(s *Scene, path string) error {
	mesh := SDFTriangles(s)
	if len(mesh) == 0 {
		return fmt.Errorf("save stl: %w", ErrNoTriangles)
	}
	if err := render.SaveSTL(path, mesh); err != nil {
		return fmt.Errorf("save stl: %w", err)
	}
	return nil
}
