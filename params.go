// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package uvwrap

import "fmt"

// Params configures a single Run of the unwrap pipeline (spec.md §4.6).
// The zero value is not valid; construct with DefaultParams and apply
// Options, mirroring DiagramOptions/WithEps's functional-options pattern.
type Params struct {
	// AngleThreshold, in degrees, is reserved for angular-defect seam
	// refinement (spec.md §4.6, §9). The baseline SeamDetector accepts
	// any value and ignores it.
	AngleThreshold float64
	// MinIslandFaces: islands with fewer faces are skipped entirely —
	// their vertices keep zero UVs (spec.md §4.6, §9 Open Questions).
	MinIslandFaces int
	// IslandMargin, in UV units, is the gap the shelf packer leaves
	// around each island's bounding box (spec.md §4.5).
	IslandMargin float64
	// PackIslands enables the shelf-packing stage (spec.md §4.5).
	PackIslands bool
	// ParallelIslands runs per-island LSCM solves concurrently. A vertex
	// shared by two islands (a non-manifold pinch point) is written by
	// exactly one island, decided up front by first-touch face order
	// (see assignVertexOwnership in orchestrator.go), so concurrent
	// solves never race on the output UV array and island numbering/
	// output values are unaffected by goroutine completion order.
	ParallelIslands bool
	// DuplicateSeamVertices, when true, gives each island its own copy
	// of any vertex it shares with another island at a pinch point,
	// instead of letting the first island to touch it (in face order)
	// own it. Off by default per spec.md §9's Open Questions: it changes
	// the output vertex count, which most OBJ consumers don't expect.
	DuplicateSeamVertices bool
}

// DefaultParams returns the baseline configuration: no packing, no
// minimum island size, 0.02 UV-unit margin (matching the Python
// reference CLI's --margin default), angular refinement disabled.
func DefaultParams() Params {
	return Params{
		AngleThreshold:        30,
		MinIslandFaces:        0,
		IslandMargin:          0.02,
		PackIslands:           false,
		ParallelIslands:       false,
		DuplicateSeamVertices: false,
	}
}

// Option mutates a Params in place, returning an error if the supplied
// value is invalid.
type Option func(*Params) error

// WithAngleThreshold sets the (currently unused) angular-defect
// threshold in degrees. deg must be in [0, 180].
func WithAngleThreshold(deg float64) Option {
	return func(p *Params) error {
		if deg < 0 || deg > 180 {
			return fmt.Errorf("uvwrap: angle threshold %v out of range [0,180]", deg)
		}
		p.AngleThreshold = deg
		return nil
	}
}

// WithMinIslandFaces sets the minimum face count an island needs to be
// parameterized. n must be >= 0.
func WithMinIslandFaces(n int) Option {
	return func(p *Params) error {
		if n < 0 {
			return fmt.Errorf("uvwrap: min island faces %d must be >= 0", n)
		}
		p.MinIslandFaces = n
		return nil
	}
}

// WithIslandMargin sets the packer's inter-island margin. margin must
// be >= 0.
func WithIslandMargin(margin float64) Option {
	return func(p *Params) error {
		if margin < 0 {
			return fmt.Errorf("uvwrap: island margin %v must be >= 0", margin)
		}
		p.IslandMargin = margin
		return nil
	}
}

// WithPackIslands enables or disables the shelf-packing stage.
func WithPackIslands(enabled bool) Option {
	return func(p *Params) error {
		p.PackIslands = enabled
		return nil
	}
}

// WithParallelIslands enables or disables concurrent per-island solves.
func WithParallelIslands(enabled bool) Option {
	return func(p *Params) error {
		p.ParallelIslands = enabled
		return nil
	}
}

// WithDuplicateSeamVertices enables or disables per-island vertex
// duplication at seams.
func WithDuplicateSeamVertices(enabled bool) Option {
	return func(p *Params) error {
		p.DuplicateSeamVertices = enabled
		return nil
	}
}

// NewParams builds a Params from DefaultParams with opts applied in
// order, stopping at the first error.
func NewParams(opts ...Option) (Params, error) {
	p := DefaultParams()
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return Params{}, err
		}
	}
	return p, nil
}
