package gen

import (
	"math/rand"
	"testing"

	"github.com/rneatherway/lith/geo"
)

func constField(t *testing.T, width, height int, h, floor float32) *HeightField {
	t.Helper()
	heights := make([]float32, width*height)
	for i := range heights {
		heights[i] = h
	}
	hf, err := NewHeightField(heights, width, height, floor)
	if err != nil {
		t.Fatal(err)
	}
	return hf
}

func randomField(t *testing.T, width, height int, scale float32, seed int64) *HeightField {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	heights := make([]float32, width*height)
	for i := range heights {
		heights[i] = -scale * rng.Float32()
	}
	hf, err := NewHeightField(heights, width, height, -scale)
	if err != nil {
		t.Fatal(err)
	}
	return hf
}

func triangles(t *testing.T, m *geo.Mesh) []geo.Triangle {
	t.Helper()
	tris, err := m.Triangles()
	if err != nil {
		t.Fatal(err)
	}
	return tris
}

// signedVolume is positive for a closed mesh whose faces point outwards.
func signedVolume(tris []geo.Triangle) float64 {
	var vol float64
	for _, t := range tris {
		a, b, c := t[0], t[1], t[2]
		vol += float64(a.Dot(b.Cross(c)))
	}
	return vol / 6
}

type edge [2]geo.Vec3

// directedEdges counts every non-degenerate directed edge.
func directedEdges(tris []geo.Triangle) map[edge]int {
	edges := map[edge]int{}
	for _, t := range tris {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a == b {
				continue
			}
			edges[edge{a, b}]++
		}
	}
	return edges
}

// checkBalanced fails unless every edge is walked as often in one
// direction as in the other.
func checkBalanced(t *testing.T, tris []geo.Triangle) {
	t.Helper()
	edges := directedEdges(tris)
	for e, n := range edges {
		if rev := edges[edge{e[1], e[0]}]; rev != n {
			t.Errorf("edge %v used %d times, reverse %d times", e, n, rev)
		}
	}
}

// checkWatertight fails unless every directed edge appears exactly once
// and its reverse appears exactly once.
func checkWatertight(t *testing.T, tris []geo.Triangle) {
	t.Helper()
	edges := directedEdges(tris)
	for e, n := range edges {
		if n != 1 {
			t.Errorf("edge %v used %d times", e, n)
		}
		if rev := edges[edge{e[1], e[0]}]; rev != 1 {
			t.Errorf("edge %v has %d opposite edges", e, rev)
		}
	}
}
