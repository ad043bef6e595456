package gen

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rneatherway/lith/geo"
	"github.com/unixpickle/model3d/model3d"
)

func radius(v geo.Vec3) float64 {
	return math.Hypot(float64(v.X()), float64(v.Y()))
}

func TestCylinderTriangleCount(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {3, 3}, {8, 5}, {80, 40}} {
		m, err := CylinderMesh(constField(t, dims[0], dims[1], -0.5, -2), 20, 20)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := m.TriangleCount(), CylinderTriangleCount(dims[0], dims[1]); got != want {
			t.Errorf("%v: %d triangles, want %d", dims, got, want)
		}
	}
}

func TestCylinderOutwardNormals(t *testing.T) {
	const (
		r      = 20
		length = 30
		floor  = -2
		relief = -0.5
	)
	w, h := 24, 6
	m, err := CylinderMesh(constField(t, w, h, relief, floor), r, length)
	if err != nil {
		t.Fatal(err)
	}
	rOuter := float64(r + relief)
	rInner := float64(r + floor)
	zLast := -float64(h-1) / float64(h) * length

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-3 }
	onRadius := func(tri geo.Triangle, want float64) bool {
		return near(radius(tri[0]), want) && near(radius(tri[1]), want) && near(radius(tri[2]), want)
	}
	atZ := func(tri geo.Triangle, want float64) bool {
		return near(float64(tri[0].Z()), want) && near(float64(tri[1].Z()), want) && near(float64(tri[2].Z()), want)
	}

	var outer, inner, topRing, bottomRing int
	for i, tri := range triangles(t, m) {
		n := tri.Normal()
		c := tri.Centroid()
		radial := geo.Vec3{c.X(), c.Y(), 0}
		switch {
		case atZ(tri, 0):
			topRing++
			if n.Z() <= 0 {
				t.Errorf("top ring triangle %d faces %v", i, n)
			}
		case atZ(tri, zLast):
			bottomRing++
			if n.Z() >= 0 {
				t.Errorf("bottom ring triangle %d faces %v", i, n)
			}
		case onRadius(tri, rOuter):
			outer++
			if n.Dot(radial) <= 0 {
				t.Errorf("outer triangle %d faces %v", i, n)
			}
		case onRadius(tri, rInner):
			inner++
			if n.Dot(radial) >= 0 {
				t.Errorf("inner triangle %d faces %v", i, n)
			}
		default:
			t.Errorf("triangle %d %v is on no surface", i, tri)
		}
	}
	if want := 2 * w * (h - 1); outer != want || inner != want {
		t.Errorf("outer %d, inner %d; want %d each", outer, inner, want)
	}
	if topRing != 2*w || bottomRing != 2*w {
		t.Errorf("rings %d, %d; want %d each", topRing, bottomRing, 2*w)
	}
}

func TestCylinderWatertight(t *testing.T) {
	hf := randomField(t, 16, 7, 2, 3)
	m, err := CylinderMesh(hf, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	tris := triangles(t, m)
	checkWatertight(t, tris)
	if vol := signedVolume(tris); vol <= 0 {
		t.Errorf("volume = %v, want positive", vol)
	}

	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatal(err)
	}
	read, err := model3d.ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if model3d.NewMeshTriangles(read).NeedsRepair() {
		t.Error("cylinder needs repair")
	}
}

func TestCylinderSeam(t *testing.T) {
	hf := randomField(t, 10, 4, 2, 5)
	g := &cylinderGenerator{hf: hf, radius: 15, length: 10}
	for y := 0; y < hf.Height(); y++ {
		wrapped := g.outer(hf.Width(), y)
		first := g.outer(0, y)
		if d := wrapped.Sub(first).Len(); d > 1e-4 {
			t.Errorf("row %d: outer column %d is %v from column 0", y, hf.Width(), d)
		}
		wrapped = g.inner(hf.Width(), y)
		first = g.inner(0, y)
		if d := wrapped.Sub(first).Len(); d > 1e-4 {
			t.Errorf("row %d: inner column %d is %v from column 0", y, hf.Width(), d)
		}
	}
}

func TestCylinderVertexPlacement(t *testing.T) {
	hf, err := NewHeightField([]float32{-1, -2, -3, -4, -5, -6, -7, -8}, 4, 2, -8)
	if err != nil {
		t.Fatal(err)
	}
	g := &cylinderGenerator{hf: hf, radius: 10, length: 4}
	tests := []struct {
		got, want geo.Vec3
	}{
		{g.outer(0, 0), geo.Vec3{9, 0, 0}},
		{g.outer(1, 0), geo.Vec3{0, 8, 0}},
		{g.outer(2, 1), geo.Vec3{-3, 0, -2}},
		{g.inner(3, 1), geo.Vec3{0, -2, -2}},
	}
	for i, tt := range tests {
		if d := tt.got.Sub(tt.want).Len(); d > 1e-5 {
			t.Errorf("%d: got %v, want %v", i, tt.got, tt.want)
		}
	}
}

func TestCylinderInvalid(t *testing.T) {
	var derr *DegenerateInputError
	if _, err := CylinderMesh(constField(t, 1, 3, 0, -1), 10, 10); !errors.As(err, &derr) {
		t.Errorf("got %v, want DegenerateInputError", err)
	}
	if _, err := CylinderMesh(constField(t, 3, 3, 0, -1), 0, 10); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := CylinderMesh(constField(t, 3, 3, 0, -1), 10, -1); err == nil {
		t.Error("expected error for negative length")
	}
	if _, err := CylinderMesh(constField(t, 3, 3, -1, -10), 10, 10); err == nil {
		t.Error("expected error for a floor on the axis")
	}
	if _, err := CylinderMesh(constField(t, 3, 3, -1, -12), 10, 10); err == nil {
		t.Error("expected error for a floor past the axis")
	}
}
