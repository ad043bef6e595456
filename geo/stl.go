package geo

import (
	"bytes"
	"io"

	"github.com/hschendel/stl"
)

const (
	stlHeaderSize   = 80
	stlPreambleSize = stlHeaderSize + 4
	stlTriangleSize = 50
)

// STLSize returns the length of the binary STL encoding of m.
func (m *Mesh) STLSize() int {
	return stlPreambleSize + stlTriangleSize*m.TriangleCount()
}

// MarshalSTL encodes m as binary STL: a zeroed 80 byte header, the
// little-endian uint32 triangle count, then 50 bytes per triangle holding
// the normal, the three vertices in stored order and two zero bytes.
func (m *Mesh) MarshalSTL() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(m.STLSize())
	if err := m.WriteSTL(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSTL writes the binary STL encoding of m to w.
func (m *Mesh) WriteSTL(w io.Writer) error {
	// An unnamed solid with no BinaryHeader leaves the header zeroed.
	solid, err := m.Solid("")
	if err != nil {
		return err
	}
	return solid.WriteAll(w)
}

// Solid converts m to an stl.Solid carrying the same vertices and the
// same unnormalised facet normals.
func (m *Mesh) Solid(name string) (*stl.Solid, error) {
	tris, err := m.Triangles()
	if err != nil {
		return nil, err
	}
	solid := &stl.Solid{
		Name:      name,
		Triangles: make([]stl.Triangle, 0, len(tris)),
	}
	for _, t := range tris {
		solid.AppendTriangle(stl.Triangle{
			Normal:   stl.Vec3(t.Normal()),
			Vertices: [3]stl.Vec3{stl.Vec3(t[0]), stl.Vec3(t[1]), stl.Vec3(t[2])},
		})
	}
	return solid, nil
}
