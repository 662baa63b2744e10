// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

import (
	"log"
	"sync"

	"github.com/geomesh/uvwrap/lscm"
	"github.com/geomesh/uvwrap/metrics"
	"github.com/geomesh/uvwrap/pack"
	"github.com/golang/geo/r3"
)

// Run executes the full unwrap pipeline (spec.md §4.6): build topology,
// detect seams, extract islands, parameterize each island, optionally
// pack, and fill result metadata. mesh is read-only; the returned mesh
// is a fresh copy owning its own UV array.
func Run(mesh *Mesh, params Params) (*Mesh, Metadata, error) {
	if err := mesh.Validate(); err != nil {
		return nil, Metadata{}, err
	}

	topo, err := BuildTopology(mesh)
	if err != nil {
		return nil, Metadata{}, err
	}

	seams := DetectSeams(mesh, topo, params)
	faceIsland, numIslands := ExtractIslands(mesh, topo, seams)

	// solveMesh is the geometry the solver and packer actually operate
	// on. By default it is mesh itself, with seam vertices shared
	// across islands exactly as the input defines them. When
	// DuplicateSeamVertices is set, it is instead an expanded copy where
	// every (vertex, island) pair that is touched gets its own vertex
	// slot, per spec.md §9's Open Questions decision #3: this trades a
	// larger output vertex count for giving each island's solve a fully
	// disjoint, unclamped vertex set at its former seams.
	solveMesh := mesh
	if params.DuplicateSeamVertices {
		solveMesh = duplicateSeamVertices(mesh, faceIsland)
	}

	out := solveMesh.CloneWithoutUVs()

	islandFacesList := make([][]int, numIslands)
	for id := 0; id < numIslands; id++ {
		islandFacesList[id] = islandFaces(faceIsland, id)
	}

	// ExtractIslands only connects faces across a shared topological
	// edge, so a vertex touched by faces in two different islands can
	// only happen at a non-manifold pinch point: two otherwise-separate
	// face fans meeting at a single shared vertex with no shared edge.
	// owner[v] is the island whose faces reach v first in ascending
	// face-index order, per spec.md §4.5 step 1's ownership rule —
	// applied here too so concurrent island solves (ParallelIslands)
	// never write the same out.UVs slot, and the default
	// (non-duplicating) output deterministically picks one island's
	// solve for a pinched vertex regardless of goroutine completion
	// order. When seam vertices were just duplicated, every vertex is
	// touched by exactly one island's faces, so this reduces to a no-op
	// partition.
	owner := assignVertexOwnership(solveMesh.Triangles, faceIsland, solveMesh.NumVertices())

	solveIsland := func(id int) {
		faces := islandFacesList[id]
		if len(faces) < params.MinIslandFaces {
			return
		}
		uvs, localToGlobal, err := lscm.Parameterize(solveMesh.Positions, solveMesh.Triangles, faces)
		if err != nil {
			log.Printf("uvwrap: island %d LSCM failed: %v; falling back to planar projection", id, err)
			scatterPlanarProjection(out, solveMesh, faces, owner, id)
			return
		}
		for i, gv := range localToGlobal {
			if owner[gv] != id {
				continue
			}
			out.UVs[gv] = Vec2{X: uvs[i].X, Y: uvs[i].Y}
		}
	}

	if params.ParallelIslands {
		var wg sync.WaitGroup
		for id := 0; id < numIslands; id++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				solveIsland(id)
			}(id)
		}
		wg.Wait()
	} else {
		for id := 0; id < numIslands; id++ {
			solveIsland(id)
		}
	}

	if params.PackIslands {
		skipped := make([]bool, numIslands)
		for id, faces := range islandFacesList {
			skipped[id] = len(faces) < params.MinIslandFaces
		}
		packIslands(out, islandFacesList, owner, skipped, params.IslandMargin)
	}

	return out, buildMetadata(out, faceIsland, numIslands, islandFacesList), nil
}

// scatterPlanarProjection assigns UV=(x,y) of the 3D position to every
// vertex of faces that id owns, the fallback spec.md §4.6 requires when
// LSCMSolver fails for an island.
func scatterPlanarProjection(out *Mesh, mesh *Mesh, faces []int, owner []int, id int) {
	seen := make(map[int]bool)
	for _, f := range faces {
		for _, gv := range mesh.Triangles[f] {
			if seen[gv] || owner[gv] != id {
				continue
			}
			seen[gv] = true
			p := mesh.Positions[gv]
			out.UVs[gv] = Vec2{X: p.X, Y: p.Y}
		}
	}
}

// duplicateSeamVertices rebuilds mesh so that every (global vertex,
// island) pair that is actually touched by a face gets its own vertex
// slot, instead of islands sharing a single vertex slot at a pinch
// point. Positions are copied from the original vertex; UVs are left
// for the caller to fill. Triangle corners are rewritten to point at the
// new per-island slots, so the returned mesh's face-to-vertex shape is
// unchanged except for which vertex index each corner now uses.
func duplicateSeamVertices(mesh *Mesh, faceIsland []int) *Mesh {
	type slot struct {
		globalVertex, island int
	}
	indexOf := make(map[slot]int)
	var positions []r3.Vector
	triangles := make([][3]int, len(mesh.Triangles))

	for f, tri := range mesh.Triangles {
		id := faceIsland[f]
		var newTri [3]int
		for c, gv := range tri {
			key := slot{gv, id}
			idx, ok := indexOf[key]
			if !ok {
				idx = len(positions)
				positions = append(positions, mesh.Positions[gv])
				indexOf[key] = idx
			}
			newTri[c] = idx
		}
		triangles[f] = newTri
	}

	return &Mesh{Positions: positions, Triangles: triangles}
}

// assignVertexOwnership scans triangles in ascending face-index order
// and assigns each vertex to the island of the first face that touches
// it, per spec.md §4.5 step 1's "first island... owns it" rule.
func assignVertexOwnership(triangles [][3]int, faceIsland []int, numVertices int) []int {
	owner := make([]int, numVertices)
	for i := range owner {
		owner[i] = -1
	}
	for f, tri := range triangles {
		id := faceIsland[f]
		for _, gv := range tri {
			if owner[gv] == -1 {
				owner[gv] = id
			}
		}
	}
	return owner
}

// packIslands runs pack.ShelfPacker over each island's bounding box and
// rewrites out.UVs in place, per spec.md §4.5 steps 1-7. Only vertices
// owner assigns to a given island are included in that island's box and
// rewritten by its placement, so a pinch-point vertex shared by two
// islands moves exactly once. Islands marked in skipped were never
// solved (params.MinIslandFaces, spec.md §9 Open Questions decision #2)
// and keep their zero-value UVs untouched: they are excluded from
// packing entirely, not given a box or a shelf slot.
func packIslands(out *Mesh, islandFacesList [][]int, owner []int, skipped []bool, margin float64) {
	var ids []int
	for id, faces := range islandFacesList {
		if skipped[id] || len(faces) == 0 {
			continue
		}
		ids = append(ids, id)
	}

	boxes := make(map[int]vec2Bounds, len(ids))
	vertsOf := make(map[int][]int, len(ids))
	rects := make([]pack.Rect, len(ids))
	for i, id := range ids {
		verts := ownedVerticesOfFaces(out.Triangles, islandFacesList[id], owner, id)
		vertsOf[id] = verts
		box := boundingBoxOf(out.UVs, verts)
		boxes[id] = box

		w := box.maxX - box.minX + margin
		h := box.maxY - box.minY + margin
		if w < margin {
			w = margin
		}
		if h < margin {
			h = margin
		}
		rects[i] = pack.Rect{Width: w, Height: h}
	}

	placements, bounds := pack.ShelfPacker{}.Pack(rects)

	scale := 1.0
	if m := maxFloat(bounds.MaxWidthUsed, bounds.TotalHeight); m > 1 {
		scale = 1 / m
	}

	for i, id := range ids {
		box := boxes[id]
		target := placements[i]
		for _, gv := range vertsOf[id] {
			uv := out.UVs[gv]
			out.UVs[gv] = Vec2{
				X: (uv.X - box.minX + target.X) * scale,
				Y: (uv.Y - box.minY + target.Y) * scale,
			}
		}
	}
}

type vec2Bounds struct {
	minX, minY, maxX, maxY float64
}

// distinctVerticesOfFaces returns the global vertex indices touched by
// faces, in first-touch order, including vertices shared with other
// islands. Used only for the informational per-island counts in
// Metadata, not for anything that writes UVs.
func distinctVerticesOfFaces(triangles [][3]int, faces []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, f := range faces {
		for _, gv := range triangles[f] {
			if !seen[gv] {
				seen[gv] = true
				out = append(out, gv)
			}
		}
	}
	return out
}

// ownedVerticesOfFaces returns the global vertex indices touched by
// faces that owner assigns to id, in first-touch order.
func ownedVerticesOfFaces(triangles [][3]int, faces []int, owner []int, id int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, f := range faces {
		for _, gv := range triangles[f] {
			if seen[gv] || owner[gv] != id {
				continue
			}
			seen[gv] = true
			out = append(out, gv)
		}
	}
	return out
}

func boundingBoxOf(uvs []Vec2, verts []int) vec2Bounds {
	if len(verts) == 0 {
		return vec2Bounds{}
	}
	first := uvs[verts[0]]
	box := vec2Bounds{minX: first.X, minY: first.Y, maxX: first.X, maxY: first.Y}
	for _, gv := range verts[1:] {
		p := uvs[gv]
		if p.X < box.minX {
			box.minX = p.X
		}
		if p.X > box.maxX {
			box.maxX = p.X
		}
		if p.Y < box.minY {
			box.minY = p.Y
		}
		if p.Y > box.maxY {
			box.maxY = p.Y
		}
	}
	return box
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// buildMetadata assembles the result Metadata, computing Coverage for
// real via uvwrap/metrics and leaving stretch at its documented
// placeholder (spec.md §6, SPEC_FULL.md §4.6).
func buildMetadata(out *Mesh, faceIsland []int, numIslands int, islandFacesList [][]int) Metadata {
	faceIslandCopy := make([]int, len(faceIsland))
	copy(faceIslandCopy, faceIsland)

	faceCounts := make([]int, numIslands)
	vertexCounts := make([]int, numIslands)
	for id, faces := range islandFacesList {
		faceCounts[id] = len(faces)
		vertexCounts[id] = len(distinctVerticesOfFaces(out.Triangles, faces))
	}

	points := make([]metrics.Point, len(out.UVs))
	for i, uv := range out.UVs {
		points[i] = metrics.Point{X: uv.X, Y: uv.Y}
	}

	return Metadata{
		NumIslands:         numIslands,
		FaceIslandIDs:      faceIslandCopy,
		AvgStretch:         metrics.PlaceholderStretch,
		MaxStretch:         metrics.PlaceholderStretch,
		Coverage:           metrics.Coverage(points, out.Triangles, metrics.DefaultResolution),
		IslandFaceCounts:   faceCounts,
		IslandVertexCounts: vertexCounts,
	}
}
