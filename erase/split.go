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

package erase

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
)

// SplitPath removes the part of a path covered by a circular erase
// region and returns the remaining disjoint sub-paths.
//
// The path is walked segment by segment and every anchor and control
// point is classified as inside or outside the circle around center
// with the given radius.  A transition from outside to inside closes
// the current sub-path; a transition back outside starts a new
// sub-path at the first outside point.  Curve segments survive only if
// all of their control points lie outside the circle.  No exact
// curve/circle intersections are computed: no point inside the circle
// survives, no point outside it is dropped.
//
// The resulting sub-paths are open; OpClose segments do not survive
// splitting.  Sub-paths left with no drawing segments are discarded,
// so an empty result means the path was erased completely.
func SplitPath(path markup.Path, center vec.Vec2, radius float64) []markup.Path {
	inside := func(p vec.Vec2) bool {
		return p.Sub(center).Length() <= radius
	}

	var out []markup.Path
	var cur markup.Path
	flush := func() {
		if !cur.Empty() {
			out = append(out, cur)
		}
		cur = nil
	}
	// start opens a new sub-path at the given outside point.
	start := func(p vec.Vec2) {
		cur = markup.Path{{Op: markup.OpMoveTo, End: p}}
	}

	var pen vec.Vec2
	penOutside := false
	for _, s := range path {
		switch s.Op {
		case markup.OpMoveTo:
			flush()
			pen = s.End
			penOutside = !inside(pen)
			if penOutside {
				start(pen)
			}

		case markup.OpLineTo:
			endOutside := !inside(s.End)
			switch {
			case penOutside && endOutside:
				cur = append(cur, s)
			case endOutside:
				// leaving the erase region
				flush()
				start(s.End)
			default:
				// entering or crossing the erase region
				flush()
			}
			pen = s.End
			penOutside = endOutside

		case markup.OpQuadTo, markup.OpCurveTo:
			keep := penOutside && !inside(s.CP1) && !inside(s.End)
			if s.Op == markup.OpCurveTo {
				keep = keep && !inside(s.CP2)
			}
			endOutside := !inside(s.End)
			switch {
			case keep:
				cur = append(cur, s)
			case endOutside:
				flush()
				start(s.End)
			default:
				flush()
			}
			pen = s.End
			penOutside = endOutside

		case markup.OpClose:
			// closing lines do not survive splitting
		}
	}
	flush()
	return out
}

// pathTouched reports whether any anchor or control point of the path
// lies within the erase circle.  Untouched paths are kept verbatim
// rather than being rebuilt by [SplitPath].
func pathTouched(path markup.Path, center vec.Vec2, radius float64) bool {
	for _, s := range path {
		switch s.Op {
		case markup.OpMoveTo, markup.OpLineTo:
			if s.End.Sub(center).Length() <= radius {
				return true
			}
		case markup.OpQuadTo:
			if s.CP1.Sub(center).Length() <= radius ||
				s.End.Sub(center).Length() <= radius {
				return true
			}
		case markup.OpCurveTo:
			if s.CP1.Sub(center).Length() <= radius ||
				s.CP2.Sub(center).Length() <= radius ||
				s.End.Sub(center).Length() <= radius {
				return true
			}
		}
	}
	return false
}
