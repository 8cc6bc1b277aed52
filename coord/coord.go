// seehuhn.de/go/markup - an annotation editing engine for paginated documents
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package coord converts between the two coordinate systems of a
// document viewer.
//
// Page space has its origin at the bottom-left corner of a page, with y
// increasing upwards, following document-format conventions.  Display
// space has its origin at the top-left corner of the viewport, with y
// increasing downwards, following raster conventions.  The two are
// related by the page bounds and a [View] (zoom, scroll, rotation),
// both supplied per call; the package holds no state.
//
// All functions are total: degenerate input (a zero-area page, a
// non-finite zoom) selects a defined fallback transform instead of an
// error, so that interactive callers never have to handle failures.
// Callers can pre-validate with [IsValidSize] and [IsWithinBounds].
package coord

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// View describes the display state of a page inside a viewport.
type View struct {
	// Zoom is the display scale factor.  One page unit maps to Zoom
	// display units.
	Zoom float64

	// Scroll is the display-space offset of the viewport origin
	// relative to the top-left corner of the zoomed page.
	Scroll vec.Vec2

	// Rotation is the page rotation in degrees, counter-clockwise
	// about the page centre in page space.
	Rotation float64
}

// valid reports whether the view parameters can form an invertible
// transform.
func (v View) valid() bool {
	return isFinite(v.Zoom) && v.Zoom > 0 &&
		isFinite(v.Scroll.X) && isFinite(v.Scroll.Y) &&
		isFinite(v.Rotation)
}

func validPage(page rect.Rect) bool {
	return isFinite(page.LLx) && isFinite(page.LLy) &&
		isFinite(page.URx) && isFinite(page.URy) &&
		page.URx > page.LLx && page.URy > page.LLy
}

// Transform returns the matrix mapping page coordinates to display
// coordinates for the given page bounds and view.
//
// The transform first rotates the page about its centre, then flips to
// the top-left origin of the rotated page, scales by the zoom factor
// and finally subtracts the scroll offset.  For a degenerate page the
// identity matrix is returned; for a degenerate view the plain Y-flip
// over the page bounds is returned.
func Transform(page rect.Rect, view View) matrix.Matrix {
	if !validPage(page) {
		return matrix.Identity
	}
	if !view.valid() {
		view = View{Zoom: 1}
	}

	M := matrix.Identity
	box := page
	if view.Rotation != 0 {
		cx := (page.LLx + page.URx) / 2
		cy := (page.LLy + page.URy) / 2
		M = matrix.Translate(-cx, -cy).
			Mul(matrix.RotateDeg(view.Rotation)).
			Mul(matrix.Translate(cx, cy))
		box = mapRect(M, page)
	}

	// flip to the top-left origin of the (rotated) page
	flip := matrix.Matrix{1, 0, 0, -1, -box.LLx, box.URy}

	return M.Mul(flip).
		Mul(matrix.Scale(view.Zoom, view.Zoom)).
		Mul(matrix.Translate(-view.Scroll.X, -view.Scroll.Y))
}

// PageToDisplay converts a page-space point to display space.
func PageToDisplay(p vec.Vec2, page rect.Rect, view View) vec.Vec2 {
	M := Transform(page, view)
	x, y := M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// DisplayToPage converts a display-space point to page space.  This is
// the inverse of [PageToDisplay].
func DisplayToPage(p vec.Vec2, page rect.Rect, view View) vec.Vec2 {
	M := Transform(page, view).Inv()
	x, y := M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// PageRectToDisplay converts a page-space rectangle to display space.
// The result is the bounding box of the four mapped corners, so that
// the result is axis-aligned for any rotation.
func PageRectToDisplay(r rect.Rect, page rect.Rect, view View) rect.Rect {
	return mapRect(Transform(page, view), r)
}

// DisplayRectToPage converts a display-space rectangle to page space.
func DisplayRectToPage(r rect.Rect, page rect.Rect, view View) rect.Rect {
	return mapRect(Transform(page, view).Inv(), r)
}

// mapRect maps the four corners of r through M and returns their
// bounding box.
func mapRect(M matrix.Matrix, r rect.Rect) rect.Rect {
	xs := [4]float64{r.LLx, r.URx, r.LLx, r.URx}
	ys := [4]float64{r.LLy, r.LLy, r.URy, r.URy}
	var out rect.Rect
	for i := range xs {
		x, y := M.Apply(xs[i], ys[i])
		if i == 0 {
			out = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			continue
		}
		out.LLx = math.Min(out.LLx, x)
		out.LLy = math.Min(out.LLy, y)
		out.URx = math.Max(out.URx, x)
		out.URy = math.Max(out.URy, y)
	}
	return out
}

// IsWithinBounds reports whether the page-space point p lies inside the
// page bounds.
func IsWithinBounds(p vec.Vec2, page rect.Rect) bool {
	return isFinite(p.X) && isFinite(p.Y) &&
		p.X >= page.LLx && p.X <= page.URx &&
		p.Y >= page.LLy && p.Y <= page.URy
}

// IsRectWithinBounds reports whether the page-space rectangle r lies
// fully inside the page bounds.
func IsRectWithinBounds(r rect.Rect, page rect.Rect) bool {
	return IsWithinBounds(vec.Vec2{X: r.LLx, Y: r.LLy}, page) &&
		IsWithinBounds(vec.Vec2{X: r.URx, Y: r.URy}, page)
}

// DefaultMaxSizeRatio is the largest fraction of the page extent an
// annotation may occupy for [IsValidSize].
const DefaultMaxSizeRatio = 0.9

// IsValidSize reports whether size is a usable annotation size for the
// given page: finite, positive, and no larger than maxRatio times the
// page extent in either direction.  A maxRatio of zero or less selects
// [DefaultMaxSizeRatio].
func IsValidSize(size vec.Vec2, page rect.Rect, maxRatio float64) bool {
	if maxRatio <= 0 {
		maxRatio = DefaultMaxSizeRatio
	}
	if !isFinite(size.X) || !isFinite(size.Y) || size.X <= 0 || size.Y <= 0 {
		return false
	}
	if !validPage(page) {
		return false
	}
	return size.X <= (page.URx-page.LLx)*maxRatio &&
		size.Y <= (page.URy-page.LLy)*maxRatio
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
