// Package geo contains the geometry primitives shared by the lithophane
// generators and the binary STL encoding of their output.
package geo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a point or direction with single precision components.
type Vec3 = mgl32.Vec3

// Sub returns the componentwise difference a - b.
func Sub(a, b Vec3) Vec3 {
	return a.Sub(b)
}

// Triangle is three vertices in winding order.
type Triangle [3]Vec3

// Normal returns the cross product of (t[1]-t[0]) and (t[2]-t[0]).
//
// The result is not normalised: its length is twice the triangle's area,
// and it points out of the face when the vertices run counter-clockwise.
func (t Triangle) Normal() Vec3 {
	u := Sub(t[1], t[0])
	v := Sub(t[2], t[0])
	return u.Cross(v)
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Vec3 {
	return t[0].Add(t[1]).Add(t[2]).Mul(1.0 / 3)
}

// MalformedMeshError reports a vertex list that cannot be split into
// triangles.
type MalformedMeshError struct {
	Vertices int
}

func (e *MalformedMeshError) Error() string {
	return fmt.Sprintf("malformed mesh: %d vertices is not a multiple of 3", e.Vertices)
}

// Mesh is a triangle soup. Every consecutive triple of vertices is one
// triangle; there is no index buffer.
type Mesh struct {
	vertices []Vec3
}

// NewMesh takes ownership of vertices.
func NewMesh(vertices []Vec3) *Mesh {
	return &Mesh{vertices: vertices}
}

// Vertices returns the flat vertex list. Callers must not modify it.
func (m *Mesh) Vertices() []Vec3 {
	return m.vertices
}

// TriangleCount is len(Vertices())/3.
func (m *Mesh) TriangleCount() int {
	return len(m.vertices) / 3
}

// Validate checks that the vertex list splits evenly into triangles.
func (m *Mesh) Validate() error {
	if len(m.vertices)%3 != 0 {
		return &MalformedMeshError{Vertices: len(m.vertices)}
	}
	return nil
}

// Triangles groups the vertex list into triangles.
func (m *Mesh) Triangles() ([]Triangle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tris := make([]Triangle, 0, m.TriangleCount())
	for i := 0; i < len(m.vertices); i += 3 {
		tris = append(tris, Triangle{m.vertices[i], m.vertices[i+1], m.vertices[i+2]})
	}
	return tris, nil
}

// Centroid returns the mean of all vertices in the mesh.
func (m *Mesh) Centroid() Vec3 {
	var sum [3]float64
	for _, v := range m.vertices {
		sum[0] += float64(v[0])
		sum[1] += float64(v[1])
		sum[2] += float64(v[2])
	}
	n := float64(len(m.vertices))
	if n == 0 {
		return Vec3{}
	}
	return Vec3{float32(sum[0] / n), float32(sum[1] / n), float32(sum[2] / n)}
}
