// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap_test

import (
	"math"
	"testing"

	"github.com/geomesh/uvwrap"
	"github.com/geomesh/uvwrap/meshgen"
)

func TestRun_Tetrahedron_OneIslandFullyMapped(t *testing.T) {
	result, metadata, err := uvwrap.Run(meshgen.Tetrahedron(), uvwrap.DefaultParams())
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if metadata.NumIslands != 1 {
		t.Errorf("Run() NumIslands = %d, want 1", metadata.NumIslands)
	}
	if len(result.UVs) != result.NumVertices() {
		t.Fatalf("Run() UVs len = %d, want %d", len(result.UVs), result.NumVertices())
	}

	minU, maxU := result.UVs[0].X, result.UVs[0].X
	minV, maxV := result.UVs[0].Y, result.UVs[0].Y
	for _, uv := range result.UVs {
		if math.IsNaN(uv.X) || math.IsNaN(uv.Y) || math.IsInf(uv.X, 0) || math.IsInf(uv.Y, 0) {
			t.Fatalf("Run() produced non-finite UV: %+v", uv)
		}
		minU, maxU = math.Min(minU, uv.X), math.Max(maxU, uv.X)
		minV, maxV = math.Min(minV, uv.Y), math.Max(maxV, uv.Y)
	}
	const eps = 1e-6
	onUnitAxis := math.Abs(minU) < eps && math.Abs(maxU-1) < eps ||
		math.Abs(minV) < eps && math.Abs(maxV-1) < eps
	if !onUnitAxis {
		t.Errorf("Run() UV bbox = [%v,%v]x[%v,%v], want at least one axis spanning [0,1]", minU, maxU, minV, maxV)
	}
}

func TestRun_DisconnectedTetrahedra_PackedIntoUnitSquare(t *testing.T) {
	params, err := uvwrap.NewParams(uvwrap.WithPackIslands(true))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	result, metadata, err := uvwrap.Run(meshgen.DisconnectedTetrahedra(), params)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if metadata.NumIslands != 2 {
		t.Fatalf("Run() NumIslands = %d, want 2", metadata.NumIslands)
	}

	const eps = 1e-6
	for i, uv := range result.UVs {
		if uv.X < -eps || uv.X > 1+eps || uv.Y < -eps || uv.Y > 1+eps {
			t.Errorf("Run() with packing UV[%d] = %+v, want within [0,1]^2", i, uv)
		}
	}
}

func TestRun_DegenerateTriangleSkipped_StillProducesFiniteUVs(t *testing.T) {
	result, _, err := uvwrap.Run(meshgen.TetrahedronWithDegenerateTriangle(), uvwrap.DefaultParams())
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	for i, uv := range result.UVs {
		if math.IsNaN(uv.X) || math.IsNaN(uv.Y) {
			t.Errorf("Run() UV[%d] = %+v, want finite", i, uv)
		}
	}
}

func TestRun_Determinism(t *testing.T) {
	mesh := meshgen.Octahedron()
	resultA, metaA, errA := uvwrap.Run(mesh, uvwrap.DefaultParams())
	resultB, metaB, errB := uvwrap.Run(mesh, uvwrap.DefaultParams())
	if errA != nil || errB != nil {
		t.Fatalf("Run() errors = %v, %v, want nil", errA, errB)
	}
	if metaA.NumIslands != metaB.NumIslands {
		t.Fatalf("Run() NumIslands differ across runs: %d vs %d", metaA.NumIslands, metaB.NumIslands)
	}
	for i := range metaA.FaceIslandIDs {
		if metaA.FaceIslandIDs[i] != metaB.FaceIslandIDs[i] {
			t.Errorf("Run() FaceIslandIDs[%d] differ across runs: %d vs %d", i, metaA.FaceIslandIDs[i], metaB.FaceIslandIDs[i])
		}
	}
	for i := range resultA.UVs {
		if resultA.UVs[i] != resultB.UVs[i] {
			t.Errorf("Run() UVs[%d] differ across runs: %+v vs %+v", i, resultA.UVs[i], resultB.UVs[i])
		}
	}
}

func TestRun_ParallelIslands_MatchesSequentialFaceIslandIDs(t *testing.T) {
	mesh := meshgen.DisconnectedTetrahedra()
	sequential, metaSeq, err := uvwrap.Run(mesh, uvwrap.DefaultParams())
	if err != nil {
		t.Fatalf("Run() (sequential) error = %v, want nil", err)
	}

	parallelParams, err := uvwrap.NewParams(uvwrap.WithParallelIslands(true))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	parallel, metaPar, err := uvwrap.Run(mesh, parallelParams)
	if err != nil {
		t.Fatalf("Run() (parallel) error = %v, want nil", err)
	}

	if metaSeq.NumIslands != metaPar.NumIslands {
		t.Fatalf("Run() NumIslands sequential=%d parallel=%d, want equal", metaSeq.NumIslands, metaPar.NumIslands)
	}
	for i := range sequential.UVs {
		if sequential.UVs[i] != parallel.UVs[i] {
			t.Errorf("Run() UVs[%d] sequential=%+v parallel=%+v, want equal (island numbering/values must not depend on solve order)", i, sequential.UVs[i], parallel.UVs[i])
		}
	}
}

func TestRun_PinchedVertex_OwnedByFirstIslandOnly(t *testing.T) {
	mesh := meshgen.PinchedBowtie()
	result, metadata, err := uvwrap.Run(mesh, uvwrap.DefaultParams())
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if metadata.NumIslands != 2 {
		t.Fatalf("Run() NumIslands = %d, want 2 (the two triangles share only a vertex, not an edge)", metadata.NumIslands)
	}
	if len(result.UVs) != 5 {
		t.Fatalf("Run() UVs len = %d, want 5 (no duplication without DuplicateSeamVertices)", len(result.UVs))
	}
	for i, uv := range result.UVs {
		if math.IsNaN(uv.X) || math.IsNaN(uv.Y) {
			t.Errorf("Run() UV[%d] = %+v, want finite", i, uv)
		}
	}
}

func TestRun_DuplicateSeamVertices_SplitsSharedVertexAcrossIslands(t *testing.T) {
	mesh := meshgen.PinchedBowtie()

	without, _, err := uvwrap.Run(mesh, uvwrap.DefaultParams())
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	params, err := uvwrap.NewParams(uvwrap.WithDuplicateSeamVertices(true))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	with, metadata, err := uvwrap.Run(mesh, params)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	if metadata.NumIslands != 2 {
		t.Fatalf("Run() NumIslands = %d, want 2", metadata.NumIslands)
	}
	// The two triangles' only shared vertex (global index 0) gets its own
	// copy per island, so the duplicating run has exactly one more UV
	// than the non-duplicating run (5 -> 6).
	if len(with.UVs) != len(without.UVs)+1 {
		t.Errorf("Run() with DuplicateSeamVertices produced %d UVs, want %d (one more than the non-duplicating run's %d)", len(with.UVs), len(without.UVs)+1, len(without.UVs))
	}
	for i, uv := range with.UVs {
		if math.IsNaN(uv.X) || math.IsNaN(uv.Y) {
			t.Errorf("Run() with DuplicateSeamVertices UV[%d] = %+v, want finite", i, uv)
		}
	}
}

func TestRun_UVSphere_LargerMeshProducesFinitePackedUVs(t *testing.T) {
	mesh := meshgen.UVSphere()
	params, err := uvwrap.NewParams(uvwrap.WithPackIslands(true))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	result, metadata, err := uvwrap.Run(mesh, params)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	// The sphere is a single connected, manifold mesh, so it resolves to
	// one island regardless of how many seam edges are cut: the spanning
	// tree's edges alone still connect every face (spec.md §4.3: islands
	// are connected components).
	if metadata.NumIslands != 1 {
		t.Errorf("Run() NumIslands = %d, want 1", metadata.NumIslands)
	}
	if len(result.UVs) != mesh.NumVertices() {
		t.Fatalf("Run() UVs len = %d, want %d", len(result.UVs), mesh.NumVertices())
	}
	const eps = 1e-6
	for i, uv := range result.UVs {
		if math.IsNaN(uv.X) || math.IsNaN(uv.Y) {
			t.Fatalf("Run() UV[%d] = %+v, want finite", i, uv)
		}
		if uv.X < -eps || uv.X > 1+eps || uv.Y < -eps || uv.Y > 1+eps {
			t.Errorf("Run() with packing UV[%d] = %+v, want within [0,1]^2", i, uv)
		}
	}
}

func TestRun_MinIslandFaces_SkipsSmallIslandsLeavingZeroUV(t *testing.T) {
	mesh := meshgen.DisconnectedTetrahedra()
	params, err := uvwrap.NewParams(uvwrap.WithMinIslandFaces(5))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	result, _, err := uvwrap.Run(mesh, params)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	// Every island here has exactly 4 faces, below the threshold of 5,
	// so no vertex should have received a UV (spec.md §9 Open Questions:
	// "leave unmapped" rather than merge).
	for i, uv := range result.UVs {
		if uv != (uvwrap.Vec2{}) {
			t.Errorf("Run() with min-faces above every island size left UV[%d] = %+v, want zero value", i, uv)
		}
	}
}

func TestRun_MinIslandFaces_WithPacking_StillLeavesSkippedIslandsZero(t *testing.T) {
	mesh := meshgen.DisconnectedTetrahedra()
	params, err := uvwrap.NewParams(uvwrap.WithMinIslandFaces(5), uvwrap.WithPackIslands(true))
	if err != nil {
		t.Fatalf("NewParams() error = %v, want nil", err)
	}
	result, _, err := uvwrap.Run(mesh, params)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	// Both 4-face islands are below the threshold of 5 and must never be
	// solved or given a shelf slot, so packing must leave every UV at
	// its zero value rather than translating a zero-box island to a
	// nonzero shelf position.
	for i, uv := range result.UVs {
		if uv != (uvwrap.Vec2{}) {
			t.Errorf("Run() with MinIslandFaces+PackIslands left UV[%d] = %+v, want zero value", i, uv)
		}
	}
}
