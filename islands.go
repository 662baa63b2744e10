// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

// ExtractIslands computes a face→island assignment: the connected
// components of the face graph built from topo's interior edges with
// every edge in seams removed (spec.md §4.3). Islands are numbered in
// the order their seed face is discovered scanning faces low to high,
// so the result is deterministic (spec.md §5, invariant 7 in §8).
func ExtractIslands(mesh *Mesh, topo *Topology, seams map[int]bool) (faceIsland []int, numIslands int) {
	adj := make([][]int, topo.F)
	for e, ef := range topo.EdgeFaces {
		if seams[e] {
			continue
		}
		f0, f1 := ef[0], ef[1]
		if f0 < 0 || f1 < 0 {
			continue
		}
		adj[f0] = append(adj[f0], f1)
		adj[f1] = append(adj[f1], f0)
	}

	faceIsland = make([]int, topo.F)
	for i := range faceIsland {
		faceIsland[i] = -1
	}

	islandID := 0
	for start := 0; start < topo.F; start++ {
		if faceIsland[start] >= 0 {
			continue
		}
		faceIsland[start] = islandID
		queue := []int{start}
		for len(queue) > 0 {
			face := queue[0]
			queue = queue[1:]
			for _, nb := range adj[face] {
				if faceIsland[nb] >= 0 {
					continue
				}
				faceIsland[nb] = islandID
				queue = append(queue, nb)
			}
		}
		islandID++
	}

	return faceIsland, islandID
}

// islandFaces returns the faces assigned to island id, in ascending
// face-index order.
func islandFaces(faceIsland []int, id int) []int {
	var faces []int
	for f, fid := range faceIsland {
		if fid == id {
			faces = append(faces, f)
		}
	}
	return faces
}
