// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lscm computes a Least Squares Conformal Map parameterization
// for a single UV island: a sparse (see sparse.go) least-squares system
// built from the discrete Cauchy–Riemann residual of every triangle,
// with two pinned vertices to remove the translation/rotation/scale
// degrees of freedom, solved and normalized into [0,1]² (spec.md §4.4).
//
// This package has no dependency on the root uvwrap package — like the
// s2delaunay subpackage, it is a self-contained numerical algorithm
// consumed by, but independent of, its caller.
package lscm

import (
	"errors"
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// Sentinel errors.
var (
	// ErrTooFewVertices is returned when an island has fewer than 3
	// distinct vertices (spec.md §7 InvalidInput).
	ErrTooFewVertices = errors.New("lscm: island has fewer than 3 distinct vertices")
	// ErrSolveFailed is returned when the linear solve does not
	// converge (spec.md §7 SolverFailure).
	ErrSolveFailed = errors.New("lscm: linear solve failed")
	// ErrNonFiniteResult is returned when the solved or normalized UVs
	// contain a NaN or Inf (spec.md §7 NonFiniteUV).
	ErrNonFiniteResult = errors.New("lscm: solve produced a non-finite UV")
)

// pinWeight is the penalty-method weight used to pin two vertices to
// fixed target positions, per spec.md §4.4(e).
const pinWeight = 1e10

// degenerateAreaEps is the minimum area below which a triangle is
// treated as degenerate and skipped during assembly, per spec.md
// §4.4(b).
const degenerateAreaEps = 1e-10

// normalizeRangeEps is the minimum UV-axis range below which that axis
// is treated as already unit-length to avoid dividing by ~0, per
// spec.md §4.4(g).
const normalizeRangeEps = 1e-6

// Point is a 2D point: a UV pair or a vertex of the local per-triangle
// frame.
type Point struct {
	X, Y float64
}

// Parameterize computes a UV pair for every distinct vertex referenced
// by the triangles in faceIndices (an island of the mesh described by
// positions/triangles). The result has one entry per local vertex, in
// first-touch order over faceIndices (spec.md §4.4(a)); the returned
// localToGlobal slice gives the global vertex index for each local
// index i, so a caller can scatter uvs[i] back onto its own UV array.
//
// It returns ErrTooFewVertices if the island has fewer than 3 distinct
// vertices, and ErrSolveFailed/ErrNonFiniteResult if the linear system
// could not be solved to a usable result. Both are recoverable at the
// call site: spec.md §4.6 falls back to planar projection for that
// island and continues the pipeline.
func Parameterize(positions []r3.Vector, triangles [][3]int, faceIndices []int) (uvs []Point, localToGlobal []int, err error) {
	localToGlobal, globalToLocal := reindex(triangles, faceIndices)
	n := len(localToGlobal)
	if n < 3 {
		return nil, nil, ErrTooFewVertices
	}

	triplets := newTripletMatrix(2 * n)
	for _, f := range faceIndices {
		tri := triangles[f]
		lv := [3]int{globalToLocal[tri[0]], globalToLocal[tri[1]], globalToLocal[tri[2]]}
		p := [3]r3.Vector{positions[tri[0]], positions[tri[1]], positions[tri[2]]}
		addTriangleContribution(triplets, lv, p)
	}

	pin1, pin2 := selectPins(localToGlobal, triangles, faceIndices, globalToLocal, positions)
	b := make([]float64, 2*n)
	pinVertex(triplets, b, pin1, 0, 0)
	pinVertex(triplets, b, pin2, 1, 0)

	// A vertex referenced only by skipped degenerate triangles has no
	// equations of its own; anchor it at the first pin's target so the
	// system stays nonsingular.
	for i := 0; i < n; i++ {
		if _, ok := triplets.values[[2]int{2 * i, 2 * i}]; !ok {
			pinVertex(triplets, b, i, 0, 0)
		}
	}

	x, err := solveDense(triplets.dense(), b)
	if err != nil {
		return nil, nil, ErrSolveFailed
	}

	uvs = make([]Point, n)
	for i := 0; i < n; i++ {
		u, v := x[2*i], x[2*i+1]
		if isNonFinite(u) || isNonFinite(v) {
			return nil, nil, ErrNonFiniteResult
		}
		uvs[i] = Point{X: u, Y: v}
	}

	normalize(uvs)
	for _, p := range uvs {
		if isNonFinite(p.X) || isNonFinite(p.Y) {
			return nil, nil, ErrNonFiniteResult
		}
	}

	return uvs, localToGlobal, nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// reindex assigns local indices 0..n-1 to the distinct global vertices
// touched by faceIndices, in first-touch order (spec.md §4.4(a)).
func reindex(triangles [][3]int, faceIndices []int) (localToGlobal []int, globalToLocal map[int]int) {
	globalToLocal = make(map[int]int)
	for _, f := range faceIndices {
		for _, gv := range triangles[f] {
			if _, ok := globalToLocal[gv]; !ok {
				globalToLocal[gv] = len(localToGlobal)
				localToGlobal = append(localToGlobal, gv)
			}
		}
	}
	return localToGlobal, globalToLocal
}

// addTriangleContribution projects the triangle onto its own plane and
// accumulates the discrete Cauchy–Riemann energy for each of its three
// directed edges into triplets, following spec.md §4.4(b)-(c) exactly:
// skip degenerate triangles, and for each directed edge i→j add the
// block B(dx,dy) at (i,j) and subtract it from the (i,i) diagonal block
// — not a symmetric (i,i)+(j,j) split.
func addTriangleContribution(triplets *tripletMatrix, lv [3]int, p [3]r3.Vector) {
	e1 := p[1].Sub(p[0])
	e2 := p[2].Sub(p[0])
	normal := e1.Cross(e2).Normalize()
	uAxis := e1.Normalize()
	vAxis := normal.Cross(uAxis)

	q := [3]Point{
		{0, 0},
		{e1.Dot(uAxis), e1.Dot(vAxis)},
		{e2.Dot(uAxis), e2.Dot(vAxis)},
	}

	area := 0.5 * math.Abs(q[1].X*q[2].Y-q[1].Y*q[2].X)
	if area < degenerateAreaEps {
		return
	}

	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		i, j := e[0], e[1]
		dx := q[j].X - q[i].X
		dy := q[j].Y - q[i].Y
		li, lj := lv[i], lv[j]

		triplets.add(2*li, 2*lj, area*dx)
		triplets.add(2*li, 2*lj+1, area*dy)
		triplets.add(2*li+1, 2*lj, area*dy)
		triplets.add(2*li+1, 2*lj+1, area*(-dx))

		triplets.add(2*li, 2*li, -area*dx)
		triplets.add(2*li, 2*li+1, -area*dy)
		triplets.add(2*li+1, 2*li, -area*dy)
		triplets.add(2*li+1, 2*li+1, -area*(-dx))
	}
}

// selectPins finds two local vertex indices to pin, per spec.md
// §4.4(d). If the island has at least two boundary vertices (vertices
// incident to a local edge that appears exactly once among the
// island's triangle edges), the pair with maximum 3D distance among
// boundary vertices is chosen; otherwise the pair with maximum 3D
// distance among all local vertices is chosen.
func selectPins(localToGlobal []int, triangles [][3]int, faceIndices []int, globalToLocal map[int]int, positions []r3.Vector) (pin1, pin2 int) {
	boundary := localBoundaryVertices(triangles, faceIndices, globalToLocal)
	candidates := boundary
	if len(candidates) < 2 {
		candidates = make([]int, len(localToGlobal))
		for i := range candidates {
			candidates[i] = i
		}
	}

	pin1, pin2 = candidates[0], candidates[1]
	maxDist := -1.0
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			pi := positions[localToGlobal[candidates[i]]]
			pj := positions[localToGlobal[candidates[j]]]
			d := pi.Sub(pj).Norm()
			if d > maxDist {
				maxDist = d
				pin1, pin2 = candidates[i], candidates[j]
			}
		}
	}
	return pin1, pin2
}

// localBoundaryVertices returns the local indices of vertices incident
// to an island-local edge that appears exactly once among the island's
// triangle edges, in ascending order. This is computed purely from faceIndices, independent
// of the mesh's global topology, matching
// original_source/starter_code/part1_cpp/src/lscm.cpp's
// find_boundary_vertices.
func localBoundaryVertices(triangles [][3]int, faceIndices []int, globalToLocal map[int]int) []int {
	counts := make(map[[2]int]int)
	for _, f := range faceIndices {
		tri := triangles[f]
		edges := [3][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for _, e := range edges {
			u, v := e[0], e[1]
			if u > v {
				u, v = v, u
			}
			counts[[2]int{u, v}]++
		}
	}

	seen := make(map[int]bool)
	var out []int
	for key, c := range counts {
		if c != 1 {
			continue
		}
		for _, gv := range key {
			lv := globalToLocal[gv]
			if !seen[lv] {
				seen[lv] = true
				out = append(out, lv)
			}
		}
	}
	sort.Ints(out)
	return out
}

// pinVertex adds the penalty-method boundary condition for local vertex
// lv, targeting (targetU, targetV), per spec.md §4.4(e).
func pinVertex(triplets *tripletMatrix, b []float64, lv int, targetU, targetV float64) {
	triplets.add(2*lv, 2*lv, pinWeight)
	triplets.add(2*lv+1, 2*lv+1, pinWeight)
	b[2*lv] += targetU * pinWeight
	b[2*lv+1] += targetV * pinWeight
}

// normalize translates uvs in place and scales each axis by its own
// range so their bounding box becomes [0,1]×[0,1] on whichever axis has
// range, per spec.md §4.4(g). The two axes are scaled independently, so
// the island's aspect ratio is not preserved.
func normalize(uvs []Point) {
	if len(uvs) == 0 {
		return
	}
	minU, maxU := uvs[0].X, uvs[0].X
	minV, maxV := uvs[0].Y, uvs[0].Y
	for _, p := range uvs {
		minU, maxU = math.Min(minU, p.X), math.Max(maxU, p.X)
		minV, maxV = math.Min(minV, p.Y), math.Max(maxV, p.Y)
	}

	rangeU := maxU - minU
	rangeV := maxV - minV
	if rangeU < normalizeRangeEps {
		rangeU = 1.0
	}
	if rangeV < normalizeRangeEps {
		rangeV = 1.0
	}

	for i, p := range uvs {
		uvs[i] = Point{
			X: (p.X - minU) / rangeU,
			Y: (p.Y - minV) / rangeV,
		}
	}
}
