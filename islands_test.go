// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap_test

import (
	"testing"

	"github.com/geomesh/uvwrap"
	"github.com/geomesh/uvwrap/meshgen"
)

func TestExtractIslands_Tetrahedron_OneIsland(t *testing.T) {
	mesh := meshgen.Tetrahedron()
	topo, err := uvwrap.BuildTopology(mesh)
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	seams := uvwrap.DetectSeams(mesh, topo, uvwrap.DefaultParams())
	faceIsland, numIslands := uvwrap.ExtractIslands(mesh, topo, seams)

	if numIslands != 1 {
		t.Errorf("ExtractIslands() numIslands = %d, want 1", numIslands)
	}
	for f, id := range faceIsland {
		if id != 0 {
			t.Errorf("faceIsland[%d] = %d, want 0", f, id)
		}
	}
}

func TestExtractIslands_Disconnected_TwoIslands(t *testing.T) {
	mesh := meshgen.DisconnectedTetrahedra()
	topo, err := uvwrap.BuildTopology(mesh)
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	seams := uvwrap.DetectSeams(mesh, topo, uvwrap.DefaultParams())
	faceIsland, numIslands := uvwrap.ExtractIslands(mesh, topo, seams)

	if numIslands != 2 {
		t.Fatalf("ExtractIslands() numIslands = %d, want 2", numIslands)
	}

	// spec.md §8 invariant 3, checked structurally: the two halves of
	// faceIsland (faces 0-3 from the first tetrahedron, 4-7 from the
	// second) never mix island ids.
	firstHalf := faceIsland[0]
	for f := 0; f < 4; f++ {
		if faceIsland[f] != firstHalf {
			t.Errorf("faceIsland[%d] = %d, want %d (same island as face 0)", f, faceIsland[f], firstHalf)
		}
	}
	secondHalf := faceIsland[4]
	for f := 4; f < 8; f++ {
		if faceIsland[f] != secondHalf {
			t.Errorf("faceIsland[%d] = %d, want %d (same island as face 4)", f, faceIsland[f], secondHalf)
		}
	}
	if firstHalf == secondHalf {
		t.Errorf("the two disconnected tetrahedra share island id %d, want distinct ids", firstHalf)
	}
}

func TestExtractIslands_EveryEdgeCrossingIsASeam(t *testing.T) {
	mesh := meshgen.Octahedron()
	topo, err := uvwrap.BuildTopology(mesh)
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	seams := uvwrap.DetectSeams(mesh, topo, uvwrap.DefaultParams())
	faceIsland, _ := uvwrap.ExtractIslands(mesh, topo, seams)

	// spec.md §8 invariant 3: for every non-seam interior edge, the two
	// adjacent faces share an island id.
	for e, ef := range topo.EdgeFaces {
		if topo.IsBoundary(e) || seams[e] {
			continue
		}
		if faceIsland[ef[0]] != faceIsland[ef[1]] {
			t.Errorf("non-seam edge %d joins faces in different islands: %d vs %d", e, faceIsland[ef[0]], faceIsland[ef[1]])
		}
	}
}
