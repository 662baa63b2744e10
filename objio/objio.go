// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package objio implements the OBJ mesh subset spec.md §6 treats as an
// external collaborator: a loader and writer the core pipeline depends
// on but does not itself implement.
package objio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geomesh/uvwrap"
	"github.com/golang/geo/r3"
)

// Load reads the OBJ subset spec.md §6 describes: v/vt/f lines, f lines
// in any of the four index-triple forms (a, a/ta, a/ta/na, a//na), and quads
// split into two triangles (a,b,c) and (a,c,d). Indices are 1-based in
// the file and converted to 0-based in memory.
//
// A face referencing an out-of-range index is dropped, not fatal: Load
// returns the mesh built from every face that was in range, plus one
// diagnostic error per dropped face, mirroring spec.md §6's "out-of-range
// indices cause the face to be dropped (loader diagnostic)" — the C++
// reference only prints these to stderr, but a library should let the
// caller decide what to do with them.
func Load(r io.Reader) (*uvwrap.Mesh, []error) {
	var positions []r3.Vector
	var texcoords []uvwrap.Vec2
	var triangles [][3]int
	var hasUV bool
	var diagnostics []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				diagnostics = append(diagnostics, fmt.Errorf("objio: line %d: %w", lineNo, err))
				continue
			}
			positions = append(positions, p)
		case "vt":
			uv, err := parseTexcoord(fields[1:])
			if err != nil {
				diagnostics = append(diagnostics, fmt.Errorf("objio: line %d: %w", lineNo, err))
				continue
			}
			hasUV = true
			texcoords = append(texcoords, uv)
		case "f":
			faceVerts, err := parseFace(fields[1:])
			if err != nil {
				diagnostics = append(diagnostics, fmt.Errorf("objio: line %d: %w", lineNo, err))
				continue
			}
			if !inRange(faceVerts, len(positions)) {
				diagnostics = append(diagnostics, fmt.Errorf("objio: line %d: face references out-of-range vertex index", lineNo))
				continue
			}
			triangles = append(triangles, splitPolygon(faceVerts)...)
		}
	}
	if err := scanner.Err(); err != nil {
		diagnostics = append(diagnostics, fmt.Errorf("objio: scan: %w", err))
	}

	mesh := &uvwrap.Mesh{Positions: positions, Triangles: triangles}
	if hasUV && len(texcoords) == len(positions) {
		mesh.UVs = texcoords
	}
	return mesh, diagnostics
}

func inRange(verts []int, numVerts int) bool {
	for _, idx := range verts {
		if idx < 0 || idx >= numVerts {
			return false
		}
	}
	return true
}

func parseVertex(fields []string) (r3.Vector, error) {
	if len(fields) < 3 {
		return r3.Vector{}, fmt.Errorf("v line has %d fields, want 3", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return r3.Vector{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return r3.Vector{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: x, Y: y, Z: z}, nil
}

func parseTexcoord(fields []string) (uvwrap.Vec2, error) {
	if len(fields) < 2 {
		return uvwrap.Vec2{}, fmt.Errorf("vt line has %d fields, want 2", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return uvwrap.Vec2{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return uvwrap.Vec2{}, err
	}
	return uvwrap.Vec2{X: u, Y: v}, nil
}

// parseFace extracts only the vertex index from each a, a/ta, or
// a/ta/na token, converting 1-based file indices to 0-based.
func parseFace(fields []string) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("f line has %d vertices, want >= 3", len(fields))
	}
	verts := make([]int, len(fields))
	for i, field := range fields {
		token := strings.SplitN(field, "/", 2)[0]
		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("f line: %w", err)
		}
		verts[i] = idx - 1
	}
	return verts, nil
}

// splitPolygon fans a convex polygon (triangle or quad) into triangles:
// a triangle is returned unchanged, a quad (a,b,c,d) is split into
// (a,b,c) and (a,c,d), per spec.md §6.
func splitPolygon(verts []int) [][3]int {
	if len(verts) == 3 {
		return [][3]int{{verts[0], verts[1], verts[2]}}
	}
	var out [][3]int
	for i := 1; i+1 < len(verts); i++ {
		out = append(out, [3]int{verts[0], verts[i], verts[i+1]})
	}
	return out
}

// Save writes mesh in the OBJ subset spec.md §6 describes: v lines for
// positions, vt lines for UVs when present, and f v/v v/v v/v lines
// (f v v v when UVs are absent), all 1-based.
func Save(w io.Writer, mesh *uvwrap.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, p := range mesh.Positions {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}

	hasUV := len(mesh.UVs) == len(mesh.Positions) && len(mesh.UVs) > 0
	if hasUV {
		for _, uv := range mesh.UVs {
			if _, err := fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y); err != nil {
				return err
			}
		}
	}

	for _, tri := range mesh.Triangles {
		var err error
		if hasUV {
			_, err = fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
				tri[0]+1, tri[0]+1, tri[1]+1, tri[1]+1, tri[2]+1, tri[2]+1)
		} else {
			_, err = fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
