package scene

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/cornell/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into a Scene.
type GLTFLoader struct {
	// Options
	FitToUnitCube bool        // Centre and scale the geometry into [-1, 1]^3
	DefaultColor  math3d.Vec3 // Used when a primitive has no base colour
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		FitToUnitCube: true,
		DefaultColor:  White,
	}
}

// LoadGLB loads a GLTF or GLB file with the default loader.
func LoadGLB(path string) (*Scene, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a scene lit by DefaultLight.
func (l *GLTFLoader) Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var tris []Triangle
	for _, m := range doc.Meshes {
		tris, err = l.processMesh(doc, m, tris)
		if err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoTriangles)
	}

	sc := New(tris, DefaultLight())
	if l.FitToUnitCube {
		sc.Transform(math3d.FitToUnitCube(sc.Bounds()))
	}
	return sc, nil
}

// processMesh appends the triangles of every triangle-list primitive.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, tris []Triangle) ([]Triangle, error) {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		color := l.primitiveColor(doc, prim)

		// GLTF front faces wind counter-clockwise; Triangle.Normal uses
		// (V2-V0) × (V1-V0), so the last two indices are swapped.
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if a >= len(positions) || b >= len(positions) || c >= len(positions) {
				return nil, fmt.Errorf("index out of range at %d", i)
			}
			tris = append(tris, NewTriangle(positions[a], positions[c], positions[b], color))
		}
	}

	return tris, nil
}

// primitiveColor returns the primitive's PBR base colour, or the default.
func (l *GLTFLoader) primitiveColor(doc *gltf.Document, prim *gltf.Primitive) math3d.Vec3 {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return l.DefaultColor
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return l.DefaultColor
	}
	f := pbr.BaseColorFactor
	return math3d.V3(float32(f[0]), float32(f[1]), float32(f[2]))
}

// readVec3Accessor reads float VEC3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		offset := i * stride
		if offset+12 > len(data) {
			return nil, fmt.Errorf("accessor data truncated at element %d", i)
		}
		for j := range 3 {
			result[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset+j*4:]))
		}
	}

	return result, nil
}

// readIndices reads scalar index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		offset := i * stride
		if offset+size > len(data) {
			return nil, fmt.Errorf("index data truncated at element %d", i)
		}
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}

	return result, nil
}

// accessorBytes returns the accessor's bytes starting at its first element
// and the stride between elements.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" && len(buffer.Data) == 0 {
		return nil, 0, fmt.Errorf("external buffers not supported yet")
	}
	if len(buffer.Data) == 0 {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	if start > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor offset %d beyond buffer", start)
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}

	return buffer.Data[start:], stride, nil
}
