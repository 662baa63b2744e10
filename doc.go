// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package uvwrap computes a UV parameterization for a triangle mesh.
//
// Given a mesh, it builds the edge topology, cuts the surface into one or
// more UV islands along a spanning-tree seam set, parameterizes each
// island with a least-squares conformal map, and optionally packs the
// islands into the unit square for texture mapping. See the subpackages
// lscm and pack for the per-island solver and the packing step.
package uvwrap
