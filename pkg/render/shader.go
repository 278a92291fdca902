package render

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chewxy/math32"
	"github.com/taigrr/cornell/pkg/math3d"
	"github.com/taigrr/cornell/pkg/scene"
)

// ErrUnknownShader is returned by ShaderByName for unregistered names.
var ErrUnknownShader = errors.New("unknown shader")

// Shader turns a hit into a linear RGB colour in 0-1 range.
// Shaders are only called for rays that hit something and must be safe for
// concurrent use.
type Shader interface {
	Shade(sc *scene.Scene, ray Ray, hit Hit) math3d.Vec3
}

// HeadlampShader shades by how directly a surface faces the viewer:
// d = max(0, n · -dir), output (d, d, d). Lights and surface colours are
// ignored.
type HeadlampShader struct{}

// Shade implements Shader.
func (HeadlampShader) Shade(sc *scene.Scene, ray Ray, hit Hit) math3d.Vec3 {
	n := sc.Triangles[hit.Index].Normal
	d := math32.Max(0, n.Dot(ray.Direction.Mul(-1)))
	return math3d.V3(d, d, d)
}

// FlatShader returns the hit triangle's colour unchanged.
type FlatShader struct{}

// Shade implements Shader.
func (FlatShader) Shade(sc *scene.Scene, _ Ray, hit Hit) math3d.Vec3 {
	return sc.Triangles[hit.Index].Color
}

// LambertShader lights the surface colour with every point light using
// inverse-square falloff: P * max(0, n · l) / (4π r²). There are no
// shadows; occluders between light and surface are ignored.
type LambertShader struct {
	Ambient math3d.Vec3 // Added before modulating by the surface colour
}

// Shade implements Shader.
func (s LambertShader) Shade(sc *scene.Scene, _ Ray, hit Hit) math3d.Vec3 {
	tri := &sc.Triangles[hit.Index]
	light := s.Ambient
	for _, l := range sc.Lights {
		toLight := l.Position.Sub(hit.Position)
		r2 := toLight.Dot(toLight)
		if r2 == 0 {
			continue
		}
		ndl := tri.Normal.Dot(toLight.Normalize())
		if ndl <= 0 {
			continue
		}
		power := l.Color.Mul(l.Intensity * ndl / (4 * math.Pi * r2))
		light = light.Add(power)
	}
	return math3d.V3(
		tri.Color[0]*light[0],
		tri.Color[1]*light[1],
		tri.Color[2]*light[2],
	)
}

var shaders = map[string]Shader{
	"headlamp": HeadlampShader{},
	"flat":     FlatShader{},
	"lambert":  LambertShader{},
}

// ShaderNames lists the names ShaderByName accepts, sorted.
func ShaderNames() []string {
	names := make([]string, 0, len(shaders))
	for name := range shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShaderByName returns a registered shader by name (case-insensitive).
func ShaderByName(name string) (Shader, error) {
	s, ok := shaders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownShader, name, strings.Join(ShaderNames(), ", "))
	}
	return s, nil
}
