package render

import "github.com/taigrr/cornell/pkg/scene"

// Hit is the nearest intersection along a ray and the index of the
// triangle that produced it.
type Hit struct {
	Intersection
	Index int
}

// Nearest returns the closest hit of ray among tris. On equal distances
// the triangle that comes first wins. The second result is false when
// nothing is hit.
func Nearest(ray Ray, tris []scene.Triangle) (Hit, bool) {
	best := Hit{Index: -1}
	for i := range tris {
		in, ok := ray.Intersect(&tris[i])
		if !ok {
			continue
		}
		if best.Index < 0 || in.Distance < best.Distance {
			best = Hit{Intersection: in, Index: i}
		}
	}
	return best, best.Index >= 0
}
