package gen

import (
	"github.com/rneatherway/lith/geo"
)

type side int

const (
	left side = iota
	top
	right
	bottom
)

// FlatTriangleCount is the number of triangles FlatMesh emits for a
// width x height field: the relief, four walls and a two triangle base.
func FlatTriangleCount(width, height int) int {
	return 2*(width-1)*(height-1) + 4*(height-1) + 4*(width-1) + 2
}

type flatGenerator struct {
	hf   *HeightField
	tris []geo.Vec3
}

// FlatMesh triangulates hf as a slab: the relief on top, a brim wall down to
// the floor on each edge, and a base at the floor. Every triangle faces
// out of the solid.
func FlatMesh(hf *HeightField) (*geo.Mesh, error) {
	if err := checkDims(hf); err != nil {
		return nil, err
	}
	g := &flatGenerator{
		hf:   hf,
		tris: make([]geo.Vec3, 0, 3*FlatTriangleCount(hf.width, hf.height)),
	}
	return g.generate(), nil
}

// vertex is the relief point at (x, y).
func (g *flatGenerator) vertex(x, y int) geo.Vec3 {
	return geo.Vec3{float32(x), float32(y), g.hf.At(x, y)}
}

// floorVertex is the point under (x, y) on the floor.
func (g *flatGenerator) floorVertex(x, y int) geo.Vec3 {
	return geo.Vec3{float32(x), float32(y), g.hf.floor}
}

func (g *flatGenerator) add(vs ...geo.Vec3) {
	g.tris = append(g.tris, vs...)
}

// addQuad adds the relief quad whose bottom-right corner is (x, y).
func (g *flatGenerator) addQuad(x, y int) {
	tl := g.vertex(x-1, y-1)
	bl := g.vertex(x-1, y)
	tr := g.vertex(x, y-1)
	br := g.vertex(x, y)
	g.add(br, bl, tl, tr, br, tl)
}

// addBrimQuad adds a wall segment ending at edge point (x, y). Left and
// right walls run from y-1 to y, top and bottom walls from x-1 to x.
func (g *flatGenerator) addBrimQuad(x, y int, s side) {
	switch s {
	case left:
		tl, tr := g.vertex(x, y-1), g.vertex(x, y)
		bl, br := g.floorVertex(x, y-1), g.floorVertex(x, y)
		g.add(br, bl, tl, br, tl, tr)
	case right:
		tl, tr := g.vertex(x, y-1), g.vertex(x, y)
		bl, br := g.floorVertex(x, y-1), g.floorVertex(x, y)
		g.add(tl, bl, br, tr, tl, br)
	case top:
		tl, tr := g.vertex(x-1, y), g.vertex(x, y)
		bl, br := g.floorVertex(x-1, y), g.floorVertex(x, y)
		g.add(tl, bl, br, tr, tl, br)
	case bottom:
		tl, tr := g.vertex(x-1, y), g.vertex(x, y)
		bl, br := g.floorVertex(x-1, y), g.floorVertex(x, y)
		g.add(br, bl, tl, br, tl, tr)
	}
}

// addBase closes the solid with two triangles facing -z.
func (g *flatGenerator) addBase() {
	w, h := g.hf.width, g.hf.height
	tl := g.floorVertex(0, 0)
	tr := g.floorVertex(w-1, 0)
	bl := g.floorVertex(0, h-1)
	br := g.floorVertex(w-1, h-1)
	g.add(tl, bl, br, tr, tl, br)
}

func (g *flatGenerator) generate() *geo.Mesh {
	w, h := g.hf.width, g.hf.height

	for y := 1; y < h; y++ {
		for x := 1; x < w; x++ {
			g.addQuad(x, y)
		}
		g.addBrimQuad(0, y, left)
		g.addBrimQuad(w-1, y, right)
	}

	for x := 1; x < w; x++ {
		g.addBrimQuad(x, 0, top)
		g.addBrimQuad(x, h-1, bottom)
	}

	g.addBase()

	return geo.NewMesh(g.tris)
}
