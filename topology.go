// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

import "sort"

// Topology holds the unique edge set of a mesh and, for each edge, the
// indices of its one or two adjacent triangles. Edges are enumerated in
// deterministic lexicographic order on (u,v) with u<v, per spec.md §4.1.
//
// Topology owns its own slices independently of the Mesh it was built
// from; it holds no back-pointer to the mesh, so the two can be passed
// and released independently (spec.md §9).
type Topology struct {
	// Edges[i] is the unordered pair {u,v}, u<v, for edge i.
	Edges [][2]int
	// EdgeFaces[i] is (f0, f1) for edge i. f1 is -1 for a boundary edge.
	EdgeFaces [][2]int

	V, E, F int
}

type edgeAdjacency struct {
	f0, f1 int
}

// BuildTopology derives the edge set and face adjacency of mesh. It
// always succeeds on a structurally valid mesh (spec.md §4.1); it
// returns ErrEmptyMesh/ErrInvalidTriangleIndex if mesh fails Validate.
//
// Each triangle's three undirected edges are inserted into a map keyed
// by {min(u,v), max(u,v)}. The first triangle to touch an edge claims
// f0; the second claims f1. A third or later touch (a non-manifold
// edge, spec.md §7) is silently dropped — this mirrors
// s2delaunay.ComputeDelaunayTriangulation's own "first two occurrences
// win" counting pass, which likewise accumulates into a fixed-size slot
// per key rather than growing an unbounded list.
func BuildTopology(mesh *Mesh) (*Topology, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	adj := make(map[[2]int]*edgeAdjacency)
	order := make([][2]int, 0, len(mesh.Triangles)*3)

	touch := func(u, v, face int) {
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		ea, ok := adj[key]
		if !ok {
			ea = &edgeAdjacency{f0: face, f1: -1}
			adj[key] = ea
			order = append(order, key)
			return
		}
		if ea.f1 == -1 && ea.f0 != face {
			ea.f1 = face
		}
		// Third+ touch (non-manifold edge): silently dropped.
	}

	for f, tri := range mesh.Triangles {
		touch(tri[0], tri[1], f)
		touch(tri[1], tri[2], f)
		touch(tri[2], tri[0], f)
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})

	topo := &Topology{
		Edges:     make([][2]int, len(order)),
		EdgeFaces: make([][2]int, len(order)),
		V:         mesh.NumVertices(),
		F:         mesh.NumTriangles(),
	}
	for i, key := range order {
		ea := adj[key]
		topo.Edges[i] = key
		topo.EdgeFaces[i] = [2]int{ea.f0, ea.f1}
	}
	topo.E = len(order)

	return topo, nil
}

// EulerCharacteristic returns V-E+F. A closed orientable genus-0 surface
// gives 2; other values are diagnostic only, never an error (spec.md
// §4.1).
func (t *Topology) EulerCharacteristic() int {
	return t.V - t.E + t.F
}

// IsBoundary reports whether edge i has only one adjacent triangle.
func (t *Topology) IsBoundary(edge int) bool {
	return t.EdgeFaces[edge][1] < 0
}
