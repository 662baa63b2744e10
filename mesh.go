// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
)

// Sentinel errors returned by the unwrap pipeline. Callers should use
// errors.Is against these rather than comparing error strings.
var (
	// ErrEmptyMesh is returned when a mesh has no vertices or no triangles.
	ErrEmptyMesh = errors.New("uvwrap: mesh has no vertices or no triangles")
	// ErrInvalidTriangleIndex is returned when a triangle references a
	// vertex index outside [0, V).
	ErrInvalidTriangleIndex = errors.New("uvwrap: triangle references an out-of-range vertex index")
)

// Vec2 is a 2D point, used for UV coordinates. (The lscm package uses
// its own Point type for the per-triangle local frame.)
// This is the package's own minimal 2-vector type: arithmetic here is
// part of the hard-core "math kernel" rather than an ambient concern, so
// it is not delegated to a projection-oriented library type.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns the component-wise difference v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mesh is a triangle mesh: an ordered list of 3D positions and an ordered
// list of triangles, each a triple of vertex indices into Positions.
// UVs, if present, has exactly len(Positions) entries.
//
// Mesh owns its own slices. It does not hold a reference to any Topology
// built over it; Topology is a separate, independently-owned value passed
// alongside the mesh to any consumer that needs both (see topology.go).
type Mesh struct {
	Positions []r3.Vector
	Triangles [][3]int
	UVs       []Vec2
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return len(m.Positions) }

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int { return len(m.Triangles) }

// Validate checks the structural invariants spec.md §3 requires of a
// Mesh: non-empty, and every triangle index in [0, V).
func (m *Mesh) Validate() error {
	if m == nil || len(m.Positions) == 0 || len(m.Triangles) == 0 {
		return ErrEmptyMesh
	}
	v := len(m.Positions)
	for _, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= v {
				return ErrInvalidTriangleIndex
			}
		}
	}
	return nil
}

// CloneWithoutUVs returns a deep copy of m with a fresh, zeroed UV array
// of length NumVertices. Positions and Triangles are copied so the
// orchestrator never mutates the caller's mesh.
func (m *Mesh) CloneWithoutUVs() *Mesh {
	out := &Mesh{
		Positions: make([]r3.Vector, len(m.Positions)),
		Triangles: make([][3]int, len(m.Triangles)),
		UVs:       make([]Vec2, len(m.Positions)),
	}
	copy(out.Positions, m.Positions)
	copy(out.Triangles, m.Triangles)
	return out
}

// triangleArea2 returns twice the 3D area of the triangle (p0,p1,p2),
// which is the norm of the cross product of two edges. Pin selection
// and the degenerate-triangle check in package lscm do not call it; they
// compute distances and areas themselves.
func triangleArea2(p0, p1, p2 r3.Vector) float64 {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Norm()
}

// vertexAngle returns the interior angle of the triangle (v0,v1,v2) at
// vertex v0, matching the angle computation in
// original_source/starter_code/part1_cpp/src/math_utils.cpp's
// compute_vertex_angle_in_triangle: normalize the two edges away from the
// vertex, clamp the dot product to [-1,1], and take the arccosine.
func vertexAngle(v0, v1, v2 r3.Vector) float64 {
	e1 := v1.Sub(v0).Normalize()
	e2 := v2.Sub(v0).Normalize()
	cos := e1.Dot(e2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
