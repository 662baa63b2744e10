// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

import (
	"fmt"
	"strings"
)

// Metadata is the result summary returned alongside the UV-mapped mesh
// by Run (spec.md §4.6, §6).
type Metadata struct {
	// NumIslands is the total number of UV islands produced.
	NumIslands int
	// FaceIslandIDs has one entry per triangle, each in [0, NumIslands).
	FaceIslandIDs []int
	// AvgStretch and MaxStretch are documented placeholders: spec.md §6
	// scopes their numerical implementation outside the hard core, and
	// no per-triangle Jacobian singular-value computation is performed.
	AvgStretch float64
	MaxStretch float64
	// Coverage is a real grid-sampled estimate of the fraction of [0,1]²
	// covered by UV triangles (uvwrap/metrics), not a placeholder.
	Coverage float64

	// IslandFaceCounts[i] and IslandVertexCounts[i] are the face and
	// distinct-vertex counts of island i. Supplemented from
	// original_source/starter_code/part2_python/cli.py's analyze
	// command: the distilled spec dropped the report shape but not the
	// underlying computability (SPEC_FULL.md §4.6).
	IslandFaceCounts   []int
	IslandVertexCounts []int
}

// FormatReport renders a short human-readable quality report, in the
// style of the Python reference CLI's analyze command. It is consumed
// by cmd/uvwrap's -report flag.
func FormatReport(m Metadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "islands: %d\n", m.NumIslands)
	fmt.Fprintf(&b, "coverage: %.3f\n", m.Coverage)
	fmt.Fprintf(&b, "avg_stretch: %.3f  max_stretch: %.3f\n", m.AvgStretch, m.MaxStretch)
	for i := 0; i < m.NumIslands; i++ {
		faces, verts := 0, 0
		if i < len(m.IslandFaceCounts) {
			faces = m.IslandFaceCounts[i]
		}
		if i < len(m.IslandVertexCounts) {
			verts = m.IslandVertexCounts[i]
		}
		fmt.Fprintf(&b, "  island %d: %d faces, %d vertices\n", i, faces, verts)
	}
	return b.String()
}
