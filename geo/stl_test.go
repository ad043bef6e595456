package geo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/hschendel/stl"
)

func oneTriangle() *Mesh {
	return NewMesh([]Vec3{
		{0.1, -2.5, 3},
		{math.MaxFloat32, 7, -0},
		{1e-30, 0, 42.125},
	})
}

func TestMarshalSTLSingleTriangle(t *testing.T) {
	m := oneTriangle()
	buf, err := m.MarshalSTL()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 134 {
		t.Fatalf("got %d bytes, want 134", len(buf))
	}
	for i, b := range buf[:80] {
		if b != 0 {
			t.Fatalf("header byte %d = %d, want 0", i, b)
		}
	}
	if n := binary.LittleEndian.Uint32(buf[80:84]); n != 1 {
		t.Errorf("triangle count = %d, want 1", n)
	}

	normal := Triangle{m.vertices[0], m.vertices[1], m.vertices[2]}.Normal()
	for i := 0; i < 3; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[84+4*i:]))
		if math.Float32bits(got) != math.Float32bits(normal[i]) {
			t.Errorf("normal[%d] = %v, want %v", i, got, normal[i])
		}
	}
	for v := 0; v < 3; v++ {
		for c := 0; c < 3; c++ {
			off := 96 + 12*v + 4*c
			bits := binary.LittleEndian.Uint32(buf[off:])
			if bits != math.Float32bits(m.vertices[v][c]) {
				t.Errorf("vertex %d component %d: bits %08x, want %08x", v, c, bits, math.Float32bits(m.vertices[v][c]))
			}
		}
	}
	if buf[132] != 0 || buf[133] != 0 {
		t.Errorf("attribute bytes = %v, want zero", buf[132:])
	}
}

func TestMarshalSTLSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 26, 100} {
		m := NewMesh(make([]Vec3, 3*n))
		buf, err := m.MarshalSTL()
		if err != nil {
			t.Fatal(err)
		}
		if len(buf) != 84+50*n || m.STLSize() != len(buf) {
			t.Errorf("%d triangles: got %d bytes, want %d", n, len(buf), 84+50*n)
		}
	}
}

func TestMarshalSTLIdempotent(t *testing.T) {
	m := oneTriangle()
	a, err := m.MarshalSTL()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.MarshalSTL()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodings of the same mesh differ")
	}
}

func TestMarshalSTLMalformed(t *testing.T) {
	m := NewMesh(make([]Vec3, 4))
	_, err := m.MarshalSTL()
	var merr *MalformedMeshError
	if !errors.As(err, &merr) {
		t.Fatalf("got %v, want MalformedMeshError", err)
	}
	if merr.Vertices != 4 {
		t.Errorf("Vertices = %d, want 4", merr.Vertices)
	}
	if err := m.WriteSTL(&bytes.Buffer{}); !errors.As(err, &merr) {
		t.Errorf("WriteSTL: got %v, want MalformedMeshError", err)
	}
}

func TestWriteSTLReadBack(t *testing.T) {
	m := NewMesh([]Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0, 0, 1}, {0, 1, 1}, {1, 0, 1},
	})
	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != m.STLSize() {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), m.STLSize())
	}

	solid, err := stl.ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(solid.Triangles) != 2 {
		t.Fatalf("read %d triangles, want 2", len(solid.Triangles))
	}
	for i, tri := range solid.Triangles {
		for j := 0; j < 3; j++ {
			if tri.Vertices[j] != stl.Vec3(m.vertices[3*i+j]) {
				t.Errorf("triangle %d vertex %d = %v, want %v", i, j, tri.Vertices[j], m.vertices[3*i+j])
			}
		}
	}
	if solid.Triangles[0].Normal != (stl.Vec3{0, 0, 1}) {
		t.Errorf("first normal = %v", solid.Triangles[0].Normal)
	}
	if solid.Triangles[1].Normal != (stl.Vec3{0, 0, -1}) {
		t.Errorf("second normal = %v", solid.Triangles[1].Normal)
	}
}

func TestSolid(t *testing.T) {
	m := NewMesh([]Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}})
	solid, err := m.Solid("plate")
	if err != nil {
		t.Fatal(err)
	}
	if solid.Name != "plate" || len(solid.Triangles) != 1 {
		t.Fatalf("unexpected solid %+v", solid)
	}
	if solid.Triangles[0].Normal != (stl.Vec3{0, 0, 4}) {
		t.Errorf("normal = %v, want unnormalised {0 0 4}", solid.Triangles[0].Normal)
	}

	if _, err := NewMesh(make([]Vec3, 2)).Solid("bad"); err == nil {
		t.Error("expected error for malformed mesh")
	}
}
