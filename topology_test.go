// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap_test

import (
	"testing"

	"github.com/geomesh/uvwrap"
	"github.com/geomesh/uvwrap/meshgen"
	"github.com/golang/geo/r3"
)

func TestBuildTopology_Tetrahedron_InvariantOne(t *testing.T) {
	topo, err := uvwrap.BuildTopology(meshgen.Tetrahedron())
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	// spec.md §8 invariant 1: sum over edges (1 if boundary else 2) == 3F.
	sum := 0
	for e := range topo.Edges {
		if topo.IsBoundary(e) {
			sum++
		} else {
			sum += 2
		}
	}
	if want := 3 * topo.F; sum != want {
		t.Errorf("edge-face incidence sum = %d, want %d", sum, want)
	}
	if topo.EulerCharacteristic() != 2 {
		t.Errorf("EulerCharacteristic() = %d, want 2", topo.EulerCharacteristic())
	}
}

func TestBuildTopology_SplitQuad_OneInteriorEdge(t *testing.T) {
	topo, err := uvwrap.BuildTopology(meshgen.SplitQuad())
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	interior := 0
	for e := range topo.Edges {
		if !topo.IsBoundary(e) {
			interior++
		}
	}
	if interior != 1 {
		t.Errorf("interior edge count = %d, want 1", interior)
	}
}

func TestBuildTopology_NonManifoldEdge_DropsThirdIncidence(t *testing.T) {
	m := &uvwrap.Mesh{
		Positions: []r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: -1, Y: 0, Z: 0},
			{X: 0, Y: -1, Z: 0},
		},
		Triangles: [][3]int{
			{0, 1, 2},
			{0, 2, 3},
			{0, 2, 4},
		},
	}
	topo, err := uvwrap.BuildTopology(m)
	if err != nil {
		t.Fatalf("BuildTopology() error = %v, want nil", err)
	}
	for e, edge := range topo.Edges {
		if edge == [2]int{0, 2} {
			if topo.EdgeFaces[e][0] != 0 || topo.EdgeFaces[e][1] != 1 {
				t.Errorf("edge {0,2} faces = %v, want {0,1} (third touch dropped)", topo.EdgeFaces[e])
			}
			return
		}
	}
	t.Fatalf("edge {0,2} not found in topology")
}
