package scene

import "github.com/taigrr/cornell/pkg/math3d"

// CornellSize is the side length of the Cornell box in world units.
const CornellSize = 555

// Cornell box palette.
var (
	Red    = math3d.V3(0.75, 0.15, 0.15)
	Yellow = math3d.V3(0.75, 0.75, 0.15)
	Green  = math3d.V3(0.15, 0.75, 0.15)
	Cyan   = math3d.V3(0.15, 0.75, 0.75)
	Blue   = math3d.V3(0.15, 0.15, 0.75)
	Purple = math3d.V3(0.75, 0.15, 0.75)
	White  = math3d.V3(0.75, 0.75, 0.75)
)

// Corner indices into a body's eight corners. A-D lie on the lower plane,
// E-H directly above them.
const (
	cA = iota
	cB
	cC
	cD
	cE
	cF
	cG
	cH
)

// Surface is one named face of a body: a colour and the corner triples of
// its two triangles.
type Surface struct {
	Name  string
	Color math3d.Vec3
	Tris  [2][3]int
}

// Body is a box-like solid described by eight corners and its surfaces.
type Body struct {
	Name     string
	Corners  [8]math3d.Vec3
	Surfaces []Surface
}

// Triangles expands the body into triangles in surface order.
func (b Body) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(b.Surfaces)*2)
	for _, s := range b.Surfaces {
		for _, idx := range s.Tris {
			tris = append(tris, NewTriangle(b.Corners[idx[0]], b.Corners[idx[1]], b.Corners[idx[2]], s.Color))
		}
	}
	return tris
}

// blockSurfaces lists the five visible faces of an interior block.
func blockSurfaces(color math3d.Vec3) []Surface {
	return []Surface{
		{Name: "front", Color: color, Tris: [2][3]int{{cE, cB, cA}, {cE, cF, cB}}},
		{Name: "right", Color: color, Tris: [2][3]int{{cF, cD, cB}, {cF, cH, cD}}},
		{Name: "back", Color: color, Tris: [2][3]int{{cH, cC, cD}, {cH, cG, cC}}},
		{Name: "left", Color: color, Tris: [2][3]int{{cG, cE, cC}, {cE, cA, cC}}},
		{Name: "top", Color: color, Tris: [2][3]int{{cG, cF, cE}, {cG, cH, cF}}},
	}
}

// block builds the corners of a block from its four footprint points
// (A, B, C, D on the floor) and its height.
func block(name string, footprint [4][2]float32, height float32, color math3d.Vec3) Body {
	var b Body
	b.Name = name
	for i, p := range footprint {
		b.Corners[i] = math3d.V3(p[0], 0, p[1])
		b.Corners[i+4] = math3d.V3(p[0], height, p[1])
	}
	b.Surfaces = blockSurfaces(color)
	return b
}

// CornellBodies returns the room and its two blocks in world units,
// before rescaling.
func CornellBodies() []Body {
	const l = CornellSize

	room := Body{
		Name: "room",
		Corners: [8]math3d.Vec3{
			cA: math3d.V3(l, 0, 0),
			cB: math3d.V3(0, 0, 0),
			cC: math3d.V3(l, 0, l),
			cD: math3d.V3(0, 0, l),
			cE: math3d.V3(l, l, 0),
			cF: math3d.V3(0, l, 0),
			cG: math3d.V3(l, l, l),
			cH: math3d.V3(0, l, l),
		},
		Surfaces: []Surface{
			{Name: "floor", Color: Green, Tris: [2][3]int{{cC, cB, cA}, {cC, cD, cB}}},
			{Name: "left wall", Color: Purple, Tris: [2][3]int{{cA, cE, cC}, {cC, cE, cG}}},
			{Name: "right wall", Color: Yellow, Tris: [2][3]int{{cF, cB, cD}, {cH, cF, cD}}},
			{Name: "ceiling", Color: Cyan, Tris: [2][3]int{{cE, cF, cG}, {cF, cH, cG}}},
			{Name: "back wall", Color: White, Tris: [2][3]int{{cG, cD, cC}, {cG, cH, cD}}},
		},
	}

	short := block("short block", [4][2]float32{
		{290, 114}, {130, 65}, {240, 272}, {82, 225},
	}, 165, Red)

	tall := block("tall block", [4][2]float32{
		{423, 247}, {265, 296}, {472, 406}, {314, 456},
	}, 330, Blue)

	return []Body{room, short, tall}
}

// CornellTriangles returns the Cornell box triangles scaled into [-1, 1]^3.
func CornellTriangles() []Triangle {
	var tris []Triangle
	for _, b := range CornellBodies() {
		tris = append(tris, b.Triangles()...)
	}
	for i := range tris {
		tris[i].Rescale(CornellSize)
	}
	return tris
}

// CornellBox returns the Cornell box scene with its default light.
func CornellBox() *Scene {
	return New(CornellTriangles(), DefaultLight())
}
