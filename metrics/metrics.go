// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package metrics computes UV quality metrics. spec.md §6 scopes their
// numerical implementation outside the hard core ("default placeholders
// acceptable"); this package gives Coverage a real grid-rasterization
// estimate, grounded on
// original_source/starter_code/part2_python/uvwrap/metrics.py's
// compute_coverage algorithm sketch, while leaving Stretch as the
// documented placeholder the spec explicitly allows.
package metrics

// DefaultResolution is the grid side length used by Coverage when the
// caller does not need a different precision/speed tradeoff.
const DefaultResolution = 256

// Point is the minimal 2D coordinate this package needs; callers pass
// uvwrap.Vec2 values converted at the call site to avoid a dependency
// cycle back onto the root package.
type Point struct {
	X, Y float64
}

// Coverage estimates the fraction of [0,1]² covered by the triangles
// described by uvs/triangles, by rasterizing onto a resolution×resolution
// grid and running a barycentric inside-test per candidate pixel in each
// triangle's bounding box, following metrics.py's compute_coverage
// sketch.
func Coverage(uvs []Point, triangles [][3]int, resolution int) float64 {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	covered := make([]bool, resolution*resolution)

	for _, tri := range triangles {
		rasterizeTriangle(covered, resolution, uvs[tri[0]], uvs[tri[1]], uvs[tri[2]])
	}

	count := 0
	for _, c := range covered {
		if c {
			count++
		}
	}
	return float64(count) / float64(resolution*resolution)
}

func rasterizeTriangle(grid []bool, resolution int, a, b, c Point) {
	toGrid := func(p Point) (float64, float64) {
		return p.X * float64(resolution), p.Y * float64(resolution)
	}
	ax, ay := toGrid(a)
	bx, by := toGrid(b)
	cx, cy := toGrid(c)

	minX := clampInt(int(minOf3(ax, bx, cx)), 0, resolution-1)
	maxX := clampInt(int(maxOf3(ax, bx, cx))+1, 0, resolution-1)
	minY := clampInt(int(minOf3(ay, by, cy)), 0, resolution-1)
	maxY := clampInt(int(maxOf3(ay, by, cy))+1, 0, resolution-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if insideTriangle(px, py, ax, ay, bx, by, cx, cy) {
				grid[y*resolution+x] = true
			}
		}
	}
}

// insideTriangle uses the sign of the three edge cross products, which
// is robust to either triangle winding.
func insideTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	sign := func(x1, y1, x2, y2, x3, y3 float64) float64 {
		return (x1-x3)*(y2-y3) - (x2-x3)*(y1-y3)
	}
	d1 := sign(px, py, ax, ay, bx, by)
	d2 := sign(px, py, bx, by, cx, cy)
	d3 := sign(px, py, cx, cy, ax, ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PlaceholderStretch is the documented 1.0 placeholder for AvgStretch
// and MaxStretch: spec.md §6 scopes the Jacobian-singular-value
// computation metrics.py sketches out of the hard core.
const PlaceholderStretch = 1.0
