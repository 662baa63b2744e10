// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lscm

import "gonum.org/v1/gonum/mat"

// tripletMatrix accumulates (row, col, value) contributions for a square
// matrix, summing repeated entries, exactly as spec.md §9 describes: "use
// a triplet builder during per-triangle assembly... to avoid O(log n)
// insertion costs". No sparse-factorization package exists anywhere in
// the retrieved corpus (gonum's own mat package — used directly by
// cogentcore-core for dense eigendecomposition/SVD — only ships dense
// Dense/LU types), so the triplets are compressed into a gonum
// *mat.Dense immediately before factorization rather than into a
// column-major sparse format. See DESIGN.md for the full justification.
type tripletMatrix struct {
	n      int
	values map[[2]int]float64
}

func newTripletMatrix(n int) *tripletMatrix {
	return &tripletMatrix{n: n, values: make(map[[2]int]float64)}
}

// add accumulates v into entry (row, col).
func (t *tripletMatrix) add(row, col int, v float64) {
	t.values[[2]int{row, col}] += v
}

// dense compresses the triplets into a dense n×n matrix.
func (t *tripletMatrix) dense() *mat.Dense {
	d := mat.NewDense(t.n, t.n, nil)
	for rc, v := range t.values {
		d.Set(rc[0], rc[1], d.At(rc[0], rc[1])+v)
	}
	return d
}

// solveDense solves a·x = b for x via gonum's LU-backed Dense.Solve,
// standing in for spec.md §4.4(f)'s sparse LU factorization.
func solveDense(a *mat.Dense, b []float64) ([]float64, error) {
	n := len(b)
	bm := mat.NewDense(n, 1, b)
	x := mat.NewDense(n, 1, nil)
	if err := x.Solve(a, bm); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.At(i, 0)
	}
	return out, nil
}
