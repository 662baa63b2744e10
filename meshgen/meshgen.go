// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package meshgen builds small synthetic meshes shared by tests and
// examples across the module, mirroring utils.GenerateRandomPoints's
// role: a single place that produces reproducible fixtures instead of
// each test file hand-rolling its own.
package meshgen

import (
	"math"

	"github.com/geomesh/uvwrap"
	"github.com/golang/geo/r3"
)

// Tetrahedron returns the unit tetrahedron of spec.md §8 scenario S1:
// four vertices at the origin and the three unit axis points, four
// triangles of its convex hull, each wound consistently outward.
func Tetrahedron() *uvwrap.Mesh {
	return &uvwrap.Mesh{
		Positions: []r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Triangles: [][3]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

// Octahedron returns the closed octahedron of spec.md §8 scenario S2:
// six vertices at ±1 along each axis, eight triangular faces, V=6,
// E=12, F=8, Euler characteristic 2.
func Octahedron() *uvwrap.Mesh {
	positions := []r3.Vector{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}
	triangles := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	return &uvwrap.Mesh{Positions: positions, Triangles: triangles}
}

// SplitQuad returns the unit square in the z=0 plane, split along its
// diagonal into two triangles: spec.md §8 scenario S3.
func SplitQuad() *uvwrap.Mesh {
	return &uvwrap.Mesh{
		Positions: []r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Triangles: [][3]int{
			{0, 1, 2},
			{0, 2, 3},
		},
	}
}

// DisconnectedTetrahedra returns two unit tetrahedra translated apart
// along X, sharing no vertices: spec.md §8 scenario S4.
func DisconnectedTetrahedra() *uvwrap.Mesh {
	a := Tetrahedron()
	b := Tetrahedron()
	offset := r3.Vector{X: 10, Y: 0, Z: 0}

	positions := make([]r3.Vector, 0, len(a.Positions)+len(b.Positions))
	positions = append(positions, a.Positions...)
	for _, p := range b.Positions {
		positions = append(positions, p.Add(offset))
	}

	triangles := make([][3]int, 0, len(a.Triangles)+len(b.Triangles))
	triangles = append(triangles, a.Triangles...)
	shift := len(a.Positions)
	for _, tri := range b.Triangles {
		triangles = append(triangles, [3]int{tri[0] + shift, tri[1] + shift, tri[2] + shift})
	}

	return &uvwrap.Mesh{Positions: positions, Triangles: triangles}
}

// PinchedBowtie returns two triangles that share exactly one vertex
// (vertex 0) and no edge: a non-manifold pinch point. Since
// ExtractIslands connects faces only across shared topological edges,
// these two triangles land in different islands even though they both
// reference global vertex 0 — the scenario spec.md §4.5/§9's "first
// island... owns it" vertex-ownership rule exists for.
func PinchedBowtie() *uvwrap.Mesh {
	return &uvwrap.Mesh{
		Positions: []r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 5, Y: 0, Z: 0},
			{X: 5, Y: 1, Z: 0},
		},
		Triangles: [][3]int{
			{0, 1, 2},
			{0, 3, 4},
		},
	}
}

// UVSphere returns the fixed-topology stress fixture
// original_source/generate_sphere.py builds: 8 longitudinal segments and
// 6 latitudinal rings around a unit sphere, giving 42 vertices, 120
// edges, 80 faces (Euler characteristic 2) — a single connected,
// higher-valence mesh for exercising the LSCM/seam/pack pipeline at a
// larger scale than the Platonic solids above.
func UVSphere() *uvwrap.Mesh {
	return Sphere(8, 6, 1.0)
}

// Sphere generates a UV sphere with segments longitudinal divisions and
// rings latitudinal divisions, ported from generate_sphere.py's
// generate_uv_sphere: a top pole, rings-1 interior rings of segments
// vertices each, a bottom pole, a triangle fan connecting each pole to
// its adjacent ring, and two triangles per quad across the interior
// rings.
func Sphere(segments, rings int, radius float64) *uvwrap.Mesh {
	positions := make([]r3.Vector, 0, segments*(rings-1)+2)
	positions = append(positions, r3.Vector{X: 0, Y: radius, Z: 0})

	for ring := 1; ring < rings; ring++ {
		theta := math.Pi * float64(ring) / float64(rings)
		ringRadius := radius * math.Sin(theta)
		y := radius * math.Cos(theta)
		for seg := 0; seg < segments; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(segments)
			positions = append(positions, r3.Vector{
				X: ringRadius * math.Cos(phi),
				Y: y,
				Z: ringRadius * math.Sin(phi),
			})
		}
	}
	positions = append(positions, r3.Vector{X: 0, Y: -radius, Z: 0})

	var triangles [][3]int

	for seg := 0; seg < segments; seg++ {
		triangles = append(triangles, [3]int{0, 1 + seg, 1 + (seg+1)%segments})
	}

	for ring := 0; ring < rings-2; ring++ {
		ringStart := 1 + ring*segments
		nextRingStart := 1 + (ring+1)*segments
		for seg := 0; seg < segments; seg++ {
			v0 := ringStart + seg
			v1 := nextRingStart + seg
			v2 := nextRingStart + (seg+1)%segments
			v3 := ringStart + (seg+1)%segments
			triangles = append(triangles, [3]int{v0, v1, v2})
			triangles = append(triangles, [3]int{v0, v2, v3})
		}
	}

	bottomPole := len(positions) - 1
	lastRingStart := 1 + (rings-2)*segments
	for seg := 0; seg < segments; seg++ {
		triangles = append(triangles, [3]int{lastRingStart + seg, bottomPole, lastRingStart + (seg+1)%segments})
	}

	return &uvwrap.Mesh{Positions: positions, Triangles: triangles}
}

// TetrahedronWithDegenerateTriangle returns Tetrahedron with one extra
// triangle appended whose second corner is a new vertex duplicating
// vertex 0's position,
// the degenerate-triangle fixture of spec.md §8 scenario S5.
func TetrahedronWithDegenerateTriangle() *uvwrap.Mesh {
	m := Tetrahedron()
	m.Positions = append(m.Positions, m.Positions[0])
	m.Triangles = append(m.Triangles, [3]int{0, len(m.Positions) - 1, 1})
	return m
}
