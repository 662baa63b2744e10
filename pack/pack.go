// Copyright (c) 2026 The uvwrap Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pack implements 2D shelf packing of UV island bounding boxes
// into the unit square (spec.md §4.5).
package pack

import "sort"

// Rect is the width/height of a single island's margined bounding box.
type Rect struct {
	Width, Height float64
}

// Placement is the unscaled (x,y) position a Packer chose for the rect
// at the same index it was given.
type Placement struct {
	X, Y float64
}

// Bounds describes the extent of a packed layout before the caller's
// final uniform scale.
type Bounds struct {
	// MaxWidthUsed is the largest shelf_x value reached while packing
	// (spec.md §4.5 step 5).
	MaxWidthUsed float64
	// TotalHeight is shelf_y + shelf_height of the last row.
	TotalHeight float64
}

// Packer places an ordered list of rectangles into a strip of unit
// width, returning one Placement per input Rect in the same order.
// This is the capability-object seam spec.md §9's design notes call
// for: a future MaxRects or Skyline packer implements the same
// interface without the orchestrator changing.
type Packer interface {
	Pack(rects []Rect) ([]Placement, Bounds)
}

// ShelfPacker is the baseline packer: sort by height descending, then
// greedily fill horizontal shelves (spec.md §4.5).
type ShelfPacker struct{}

// Pack implements Packer.
func (ShelfPacker) Pack(rects []Rect) ([]Placement, Bounds) {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rects[order[i]].Height > rects[order[j]].Height
	})

	placements := make([]Placement, len(rects))
	var shelfX, shelfY, shelfHeight, maxWidthUsed float64

	for _, idx := range order {
		r := rects[idx]
		if shelfX > 0 && shelfX+r.Width > 1.0 {
			shelfY += shelfHeight
			shelfHeight = 0
			shelfX = 0
		}
		if shelfX == 0 {
			shelfHeight = r.Height
		}

		placements[idx] = Placement{X: shelfX, Y: shelfY}
		shelfX += r.Width
		if shelfX > maxWidthUsed {
			maxWidthUsed = shelfX
		}
	}

	return placements, Bounds{MaxWidthUsed: maxWidthUsed, TotalHeight: shelfY + shelfHeight}
}
