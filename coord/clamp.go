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

package coord

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Corner identifies a corner of a rectangle in page-space sense, i.e.
// "top" is the side with the larger y coordinate.
type Corner int

// The four corners of a rectangle.
const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Clamp constrains a rectangle with the given origin (lower-left
// corner) and size to lie fully inside the page bounds, inset by
// padding on every side.  If the rectangle is larger than the available
// area in some direction, it is centred on the page in that direction
// instead; an annotation must never report an unclamped position, and
// centring is the defined policy for the oversized case.
func Clamp(origin, size vec.Vec2, page rect.Rect, padding float64) vec.Vec2 {
	if !validPage(page) || !isFinite(size.X) || !isFinite(size.Y) {
		// fall back to the page centre
		return vec.Vec2{
			X: (page.LLx + page.URx) / 2,
			Y: (page.LLy + page.URy) / 2,
		}
	}
	if !isFinite(origin.X) {
		origin.X = page.LLx + (page.URx-page.LLx-size.X)/2
	}
	if !isFinite(origin.Y) {
		origin.Y = page.LLy + (page.URy-page.LLy-size.Y)/2
	}

	origin.X = clampAxis(origin.X, size.X, page.LLx, page.URx, padding)
	origin.Y = clampAxis(origin.Y, size.Y, page.LLy, page.URy, padding)
	return origin
}

// clampAxis clamps one coordinate axis.  lo and hi are the page bounds
// on this axis.
func clampAxis(origin, size, lo, hi, padding float64) float64 {
	if size > hi-lo-2*padding {
		// oversized: centre on the page
		return lo + (hi-lo-size)/2
	}
	if origin < lo+padding {
		return lo + padding
	}
	if origin+size > hi-padding {
		return hi - padding - size
	}
	return origin
}

// AdjustOriginForResize returns the new origin of a rectangle whose
// size changes from oldSize to newSize while its centre stays fixed.
// The result is clamped to the page bounds.
func AdjustOriginForResize(oldOrigin, oldSize, newSize vec.Vec2, page rect.Rect) vec.Vec2 {
	origin := vec.Vec2{
		X: oldOrigin.X + (oldSize.X-newSize.X)/2,
		Y: oldOrigin.Y + (oldSize.Y-newSize.Y)/2,
	}
	return Clamp(origin, newSize, page, 0)
}

// AdjustOriginForCornerResize returns the new origin of a rectangle
// whose size changes from oldSize to newSize while the given anchor
// corner stays fixed and the opposite corner moves.  The result is
// clamped to the page bounds.
func AdjustOriginForCornerResize(oldOrigin, oldSize, newSize vec.Vec2, anchor Corner, page rect.Rect) vec.Vec2 {
	var origin vec.Vec2
	switch anchor {
	case TopLeft:
		origin = vec.Vec2{
			X: oldOrigin.X,
			Y: oldOrigin.Y + oldSize.Y - newSize.Y,
		}
	case TopRight:
		origin = vec.Vec2{
			X: oldOrigin.X + oldSize.X - newSize.X,
			Y: oldOrigin.Y + oldSize.Y - newSize.Y,
		}
	case BottomLeft:
		origin = oldOrigin
	case BottomRight:
		origin = vec.Vec2{
			X: oldOrigin.X + oldSize.X - newSize.X,
			Y: oldOrigin.Y,
		}
	default:
		origin = oldOrigin
	}
	return Clamp(origin, newSize, page, 0)
}
