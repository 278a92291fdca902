package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/cornell/pkg/math3d"
)

func TestCornellBoxShape(t *testing.T) {
	sc := CornellBox()

	// Five room surfaces plus five faces per block, two triangles each.
	if got := sc.TriangleCount(); got != 30 {
		t.Errorf("TriangleCount = %d, want 30", got)
	}
	if len(sc.Lights) != 1 {
		t.Fatalf("len(Lights) = %d, want 1", len(sc.Lights))
	}

	light := sc.Lights[0]
	if light.Position != math3d.V3(-0.3, 0.5, -0.7) {
		t.Errorf("light position = %v", light.Position)
	}
	if light.Color != math3d.V3(1, 1, 1) || light.Intensity != 2 {
		t.Errorf("light = %+v, want white with intensity 2", light)
	}
}

func TestCornellBoxWithinUnitCube(t *testing.T) {
	sc := CornellBox()

	for i, tri := range sc.Triangles {
		for _, v := range []math3d.Vec3{tri.V0, tri.V1, tri.V2} {
			for axis, c := range v {
				if c < -1 || c > 1 {
					t.Errorf("triangle %d axis %d = %v, outside [-1, 1]", i, axis, c)
				}
			}
		}
	}

	b := sc.Bounds()
	if b.Min != math3d.V3(-1, -1, -1) || b.Max != math3d.V3(1, 1, 1) {
		t.Errorf("room bounds = %v, want exactly [-1, 1]^3", b)
	}
}

func TestCornellBoxNormals(t *testing.T) {
	sc := CornellBox()

	if err := sc.Validate(); err != nil {
		t.Fatalf("Validate = %v", err)
	}

	for i, tri := range sc.Triangles {
		if l := tri.Normal.Len(); math32.Abs(l-1) > 1e-5 {
			t.Errorf("triangle %d normal length = %v", i, l)
		}

		// Normals must match the rescaled vertices, not the world ones.
		check := NewTriangle(tri.V0, tri.V1, tri.V2, tri.Color)
		if !math3d.ApproxEqual(check.Normal, tri.Normal, 1e-5) {
			t.Errorf("triangle %d normal %v, recomputed %v", i, tri.Normal, check.Normal)
		}
	}

	// The back wall faces the camera, which looks down +z.
	for _, tri := range sc.Triangles[8:10] {
		if tri.Color != White {
			t.Fatalf("expected back wall triangles at index 8-9, got color %v", tri.Color)
		}
		if !math3d.ApproxEqual(tri.Normal, math3d.V3(0, 0, -1), 1e-6) {
			t.Errorf("back wall normal = %v, want (0, 0, -1)", tri.Normal)
		}
	}
}

func TestCornellBodies(t *testing.T) {
	bodies := CornellBodies()
	if len(bodies) != 3 {
		t.Fatalf("len(bodies) = %d, want 3", len(bodies))
	}

	colors := map[string]math3d.Vec3{
		"floor":      Green,
		"left wall":  Purple,
		"right wall": Yellow,
		"ceiling":    Cyan,
		"back wall":  White,
	}
	for _, s := range bodies[0].Surfaces {
		want, ok := colors[s.Name]
		if !ok {
			t.Errorf("unexpected room surface %q", s.Name)
			continue
		}
		if s.Color != want {
			t.Errorf("%s color = %v, want %v", s.Name, s.Color, want)
		}
	}

	for _, b := range bodies[1:] {
		if len(b.Surfaces) != 5 {
			t.Errorf("%s has %d surfaces, want 5", b.Name, len(b.Surfaces))
		}
		// Upper corners sit directly above the footprint.
		for i := range 4 {
			lo, hi := b.Corners[i], b.Corners[i+4]
			if lo[0] != hi[0] || lo[2] != hi[2] || lo[1] != 0 || hi[1] <= 0 {
				t.Errorf("%s corner %d: %v / %v", b.Name, i, lo, hi)
			}
		}
	}

	if bodies[1].Surfaces[0].Color != Red || bodies[2].Surfaces[0].Color != Blue {
		t.Error("short block should be red and tall block blue")
	}
}
