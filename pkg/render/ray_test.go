package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/cornell/pkg/math3d"
	"github.com/taigrr/cornell/pkg/scene"
)

// facingTriangle sits in the z=5 plane and faces the default camera.
func facingTriangle() scene.Triangle {
	return scene.NewTriangle(
		math3d.V3(-1, -1, 5), math3d.V3(1, -1, 5), math3d.V3(0, 1, 5),
		math3d.One3(),
	)
}

func TestIntersect(t *testing.T) {
	tri := facingTriangle()

	tests := []struct {
		name     string
		origin   math3d.Vec3
		dir      math3d.Vec3
		hit      bool
		distance float32
		position math3d.Vec3
	}{
		{
			name:     "through centroid",
			origin:   math3d.V3(0, -1.0/3, 0),
			dir:      math3d.V3(0, 0, 1),
			hit:      true,
			distance: 5,
			position: math3d.V3(0, -1.0/3, 5),
		},
		{
			name:     "from camera",
			origin:   math3d.V3(0, 0, -2),
			dir:      math3d.V3(0, 0, 1),
			hit:      true,
			distance: 7,
			position: math3d.V3(0, 0, 5),
		},
		{
			name:     "unnormalised direction scales distance",
			origin:   math3d.V3(0, 0, -2),
			dir:      math3d.V3(0, 0, 2),
			hit:      true,
			distance: 3.5,
			position: math3d.V3(0, 0, 5),
		},
		{
			name:   "parallel to plane",
			origin: math3d.V3(0, 0, 5),
			dir:    math3d.V3(1, 0, 0),
		},
		{
			name:   "triangle behind origin",
			origin: math3d.V3(0, 0, 10),
			dir:    math3d.V3(0, 0, 1),
		},
		{
			name:   "outside edges",
			origin: math3d.V3(5, 5, -2),
			dir:    math3d.V3(0, 0, 1),
		},
		{
			name:   "origin on surface",
			origin: math3d.V3(0, 0, 5),
			dir:    math3d.V3(0, 0, 1),
		},
		{
			name:   "beyond far limit",
			origin: math3d.V3(0, 0, -2),
			dir:    math3d.V3(0, 0, 1e-7),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := Intersect(tc.origin, tc.dir, &tri)
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v (t=%v)", ok, tc.hit, in.Distance)
			}
			if !ok {
				return
			}
			if math32.Abs(in.Distance-tc.distance) > 1e-4 {
				t.Errorf("distance = %v, want %v", in.Distance, tc.distance)
			}
			if !math3d.ApproxEqual(in.Position, tc.position, 1e-4) {
				t.Errorf("position = %v, want %v", in.Position, tc.position)
			}
		})
	}
}

func TestIntersectPositionOnRay(t *testing.T) {
	tri := facingTriangle()
	ray := Ray{Origin: math3d.V3(0, -0.5, -2), Direction: math3d.V3(0.02, 0.05, 1).Normalize()}

	in, ok := ray.Intersect(&tri)
	if !ok {
		t.Fatal("expected hit")
	}
	if !math3d.ApproxEqual(in.Position, ray.At(in.Distance), 1e-4) {
		t.Errorf("position %v is not origin + t*dir = %v", in.Position, ray.At(in.Distance))
	}
}

func TestIntersectBothWindings(t *testing.T) {
	front := facingTriangle()
	back := scene.NewTriangle(front.V0, front.V2, front.V1, front.Color)
	ray := Ray{Origin: math3d.V3(0, 0, -2), Direction: math3d.V3(0, 0, 1)}

	for name, tri := range map[string]scene.Triangle{"front": front, "back": back} {
		if _, ok := ray.Intersect(&tri); !ok {
			t.Errorf("%s: expected hit regardless of winding", name)
		}
	}
}

func TestIntersectDegenerate(t *testing.T) {
	tests := []struct {
		name string
		tri  scene.Triangle
	}{
		{"repeated vertex", scene.NewTriangle(math3d.V3(0, 0, 5), math3d.V3(0, 0, 5), math3d.V3(1, 1, 5), math3d.One3())},
		{"collinear", scene.NewTriangle(math3d.V3(-1, 0, 5), math3d.V3(0, 0, 5), math3d.V3(1, 0, 5), math3d.One3())},
		{"single point", scene.NewTriangle(math3d.V3(0, 0, 5), math3d.V3(0, 0, 5), math3d.V3(0, 0, 5), math3d.One3())},
	}

	ray := Ray{Origin: math3d.V3(0, 0, -2), Direction: math3d.V3(0, 0, 1)}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if in, ok := ray.Intersect(&tc.tri); ok {
				t.Errorf("unexpected hit at t=%v", in.Distance)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	far := facingTriangle()
	near := facingTriangle()
	for _, v := range []*math3d.Vec3{&near.V0, &near.V1, &near.V2} {
		v[2] = 3
	}
	ray := Ray{Origin: math3d.V3(0, 0, -2), Direction: math3d.V3(0, 0, 1)}

	t.Run("closest wins", func(t *testing.T) {
		hit, ok := Nearest(ray, []scene.Triangle{far, near})
		if !ok {
			t.Fatal("expected hit")
		}
		if hit.Index != 1 {
			t.Errorf("index = %d, want 1", hit.Index)
		}
		if math32.Abs(hit.Distance-5) > 1e-4 {
			t.Errorf("distance = %v, want 5", hit.Distance)
		}
	})

	t.Run("order does not matter", func(t *testing.T) {
		hit, _ := Nearest(ray, []scene.Triangle{near, far})
		if hit.Index != 0 {
			t.Errorf("index = %d, want 0", hit.Index)
		}
	})

	t.Run("ties keep first", func(t *testing.T) {
		twin := far
		twin.Color = math3d.V3(1, 0, 0)
		hit, ok := Nearest(ray, []scene.Triangle{far, twin})
		if !ok || hit.Index != 0 {
			t.Errorf("got index %d (ok=%v), want 0", hit.Index, ok)
		}
	})

	t.Run("misses are skipped", func(t *testing.T) {
		away := facingTriangle()
		for _, v := range []*math3d.Vec3{&away.V0, &away.V1, &away.V2} {
			v[0] += 10
		}
		hit, ok := Nearest(ray, []scene.Triangle{away, far})
		if !ok || hit.Index != 1 {
			t.Errorf("got index %d (ok=%v), want 1", hit.Index, ok)
		}
	})

	t.Run("empty", func(t *testing.T) {
		hit, ok := Nearest(ray, nil)
		if ok {
			t.Error("expected no hit")
		}
		if hit.Index != -1 {
			t.Errorf("index = %d, want -1", hit.Index)
		}
	})
}
