package gen

import (
	"fmt"
	"math"

	"github.com/rneatherway/lith/geo"
)

// CylinderTriangleCount is the number of triangles CylinderMesh emits for a
// width x height field.
func CylinderTriangleCount(width, height int) int {
	return 4 * width * height
}

type cylinderGenerator struct {
	hf     *HeightField
	radius float32
	length float32
	tris   []geo.Vec3
}

// CylinderMesh wraps hf around the z axis. Column x sits at angle
// 2*pi*x/width and row y at z = -length*y/height. The relief forms the
// outer wall at radius+height, the floor forms a smooth inner wall at
// radius+floor, and the two are joined by a ring at the first and last
// rows. Column width-1 is stitched back to column 0 on every surface.
func CylinderMesh(hf *HeightField, radius, length float32) (*geo.Mesh, error) {
	if err := checkDims(hf); err != nil {
		return nil, err
	}
	if radius <= 0 || length <= 0 {
		return nil, fmt.Errorf("cylinder needs a positive radius and length, got %v and %v", radius, length)
	}
	if radius+hf.floor <= 0 {
		return nil, fmt.Errorf("floor %v reaches past the cylinder axis at radius %v", hf.floor, radius)
	}
	g := &cylinderGenerator{
		hf:     hf,
		radius: radius,
		length: length,
		tris:   make([]geo.Vec3, 0, 3*CylinderTriangleCount(hf.width, hf.height)),
	}
	return g.generate(), nil
}

func (g *cylinderGenerator) point(x, y int, r float32) geo.Vec3 {
	angle := float32(x) / float32(g.hf.width) * 2 * math.Pi
	sin, cos := math.Sincos(float64(angle))
	return geo.Vec3{
		r * float32(cos),
		r * float32(sin),
		-(float32(y) / float32(g.hf.height)) * g.length,
	}
}

// outer is the relief point for column x and row y. Column width is the
// same column as 0.
func (g *cylinderGenerator) outer(x, y int) geo.Vec3 {
	return g.point(x, y, g.radius+g.hf.At(x%g.hf.width, y))
}

func (g *cylinderGenerator) inner(x, y int) geo.Vec3 {
	return g.point(x, y, g.radius+g.hf.floor)
}

func (g *cylinderGenerator) add(vs ...geo.Vec3) {
	g.tris = append(g.tris, vs...)
}

// addOuterQuad adds the outer quad between columns x0, x1 and rows y-1, y.
func (g *cylinderGenerator) addOuterQuad(x0, x1, y int) {
	tl := g.outer(x0, y-1)
	bl := g.outer(x0, y)
	tr := g.outer(x1, y-1)
	br := g.outer(x1, y)
	g.add(tl, bl, br, tl, br, tr)
}

// addInnerQuad mirrors addOuterQuad so the face points at the axis.
func (g *cylinderGenerator) addInnerQuad(x0, x1, y int) {
	tl := g.inner(x0, y-1)
	bl := g.inner(x0, y)
	tr := g.inner(x1, y-1)
	br := g.inner(x1, y)
	g.add(br, bl, tl, tr, br, tl)
}

// addRings joins the inner and outer walls between columns x0 and x1 at
// the last row (facing -z) and the first row (facing +z).
func (g *cylinderGenerator) addRings(x0, x1 int) {
	last := g.hf.height - 1

	tl := g.inner(x0, last)
	bl := g.outer(x0, last)
	tr := g.inner(x1, last)
	br := g.outer(x1, last)
	g.add(br, bl, tl, tr, br, tl)

	tl = g.outer(x0, 0)
	bl = g.inner(x0, 0)
	tr = g.outer(x1, 0)
	br = g.inner(x1, 0)
	g.add(br, bl, tl, tr, br, tl)
}

func (g *cylinderGenerator) generate() *geo.Mesh {
	w, h := g.hf.width, g.hf.height

	for y := 1; y < h; y++ {
		for x := 1; x < w; x++ {
			g.addOuterQuad(x-1, x, y)
			g.addInnerQuad(x-1, x, y)
		}
		// Seam: the last column joins the first.
		g.addOuterQuad(w-1, 0, y)
		g.addInnerQuad(w-1, 0, y)
	}

	for x := 1; x < w; x++ {
		g.addRings(x-1, x)
	}
	g.addRings(w-1, 0)

	return geo.NewMesh(g.tris)
}
