// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

// dualNeighbor is one (neighborFace, edgeIndex) entry of the dual
// adjacency that buildDualAdjacency builds: for each face, the faces
// reachable through its interior edges. It is rebuilt fresh by each
// stage that needs it and released at that stage's boundary (spec.md
// §9: the face graph is transient per-stage).
type dualNeighbor struct {
	face int
	edge int
}

func buildDualAdjacency(topo *Topology) [][]dualNeighbor {
	adj := make([][]dualNeighbor, topo.F)
	for e, ef := range topo.EdgeFaces {
		f0, f1 := ef[0], ef[1]
		if f0 < 0 || f1 < 0 {
			continue
		}
		adj[f0] = append(adj[f0], dualNeighbor{face: f1, edge: e})
		adj[f1] = append(adj[f1], dualNeighbor{face: f0, edge: e})
	}
	return adj
}

// DetectSeams returns the set of interior edge indices that are not part
// of a BFS spanning tree of the dual (face) graph. Together with the
// tree edges, the returned seams partition the interior edges of topo
// (spec.md §4.2, invariant 2 in spec.md §8).
//
// params.AngleThreshold is accepted but unused by this baseline pass;
// see SPEC_FULL.md's Open Questions for why angular-defect refinement
// is not implemented here.
//
// Disconnected face graphs are handled by restarting the BFS from the
// lowest-index unvisited face; each connected component gets its own
// spanning tree, exactly as spec.md §4.2's edge case requires.
func DetectSeams(mesh *Mesh, topo *Topology, params Params) map[int]bool {
	_ = params.AngleThreshold

	adj := buildDualAdjacency(topo)
	visited := make([]bool, topo.F)
	treeEdges := make(map[int]bool)

	for start := 0; start < topo.F; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			face := queue[0]
			queue = queue[1:]
			for _, nb := range adj[face] {
				if visited[nb.face] {
					continue
				}
				visited[nb.face] = true
				treeEdges[nb.edge] = true
				queue = append(queue, nb.face)
			}
		}
	}

	seams := make(map[int]bool)
	for e, ef := range topo.EdgeFaces {
		if ef[0] < 0 || ef[1] < 0 {
			continue // boundary edge: never a tree edge or a seam.
		}
		if !treeEdges[e] {
			seams[e] = true
		}
	}
	return seams
}
