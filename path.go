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

package markup

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SegmentOp is the path construction operator of a [Segment].
type SegmentOp uint8

// The path construction operators.
const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpQuadTo
	OpCurveTo
	OpClose
)

// Segment is one step in the construction of a [Path].
//
// For OpMoveTo and OpLineTo only End is used.  OpQuadTo uses CP1 as the
// control point, OpCurveTo uses CP1 and CP2.  OpClose uses no points.
type Segment struct {
	Op       SegmentOp
	CP1, CP2 vec.Vec2
	End      vec.Vec2
}

// Path is a sequence of path construction segments.  A path may contain
// several sub-paths, each started by an OpMoveTo segment.
//
// Paths stored in [Properties] use coordinates relative to the
// lower-left corner of the owning annotation's frame.
type Path []Segment

// Line returns a path consisting of the single line segment from p to q.
func Line(p, q vec.Vec2) Path {
	return Path{
		{Op: OpMoveTo, End: p},
		{Op: OpLineTo, End: q},
	}
}

// Polyline returns a path connecting the given points with straight
// lines.  If closed is true, the path is closed back to the first
// point.
func Polyline(points []vec.Vec2, closed bool) Path {
	if len(points) == 0 {
		return nil
	}
	p := make(Path, 0, len(points)+1)
	p = append(p, Segment{Op: OpMoveTo, End: points[0]})
	for _, pt := range points[1:] {
		p = append(p, Segment{Op: OpLineTo, End: pt})
	}
	if closed {
		p = append(p, Segment{Op: OpClose})
	}
	return p
}

// Points returns the anchor points of the path, i.e. the start and end
// points of all segments, without Bézier control points.
func (p Path) Points() []vec.Vec2 {
	var pts []vec.Vec2
	for _, s := range p {
		if s.Op == OpClose {
			continue
		}
		pts = append(pts, s.End)
	}
	return pts
}

// Empty reports whether the path contains no drawing segments.  A path
// consisting only of OpMoveTo and OpClose segments is empty.
func (p Path) Empty() bool {
	for _, s := range p {
		switch s.Op {
		case OpLineTo, OpQuadTo, OpCurveTo:
			return false
		}
	}
	return true
}

// Clone returns a copy of the path which shares no storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	q := make(Path, len(p))
	copy(q, p)
	return q
}

// Translate returns a copy of the path with all points shifted by d.
func (p Path) Translate(d vec.Vec2) Path {
	q := make(Path, len(p))
	for i, s := range p {
		s.CP1 = s.CP1.Add(d)
		s.CP2 = s.CP2.Add(d)
		s.End = s.End.Add(d)
		q[i] = s
	}
	return q
}

// BBox returns the bounding box of the path, including Bézier control
// points.  The control-point hull always contains the curve, so the
// result may be slightly larger than the exact extent.  For an empty
// path the zero rectangle is returned.
func (p Path) BBox() rect.Rect {
	first := true
	var b rect.Rect
	grow := func(pt vec.Vec2) {
		if first {
			b = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			first = false
			return
		}
		b.LLx = math.Min(b.LLx, pt.X)
		b.LLy = math.Min(b.LLy, pt.Y)
		b.URx = math.Max(b.URx, pt.X)
		b.URy = math.Max(b.URy, pt.Y)
	}
	for _, s := range p {
		switch s.Op {
		case OpMoveTo, OpLineTo:
			grow(s.End)
		case OpQuadTo:
			grow(s.CP1)
			grow(s.End)
		case OpCurveTo:
			grow(s.CP1)
			grow(s.CP2)
			grow(s.End)
		}
	}
	return b
}

// PathsBBox returns the joint bounding box of the given paths.
func PathsBBox(paths []Path) rect.Rect {
	var b rect.Rect
	first := true
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		pb := p.BBox()
		if first {
			b = pb
			first = false
			continue
		}
		b.LLx = math.Min(b.LLx, pb.LLx)
		b.LLy = math.Min(b.LLy, pb.LLy)
		b.URx = math.Max(b.URx, pb.URx)
		b.URy = math.Max(b.URy, pb.URy)
	}
	return b
}
