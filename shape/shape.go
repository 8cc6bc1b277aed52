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

// Package shape converts rough freehand point sequences into idealised
// geometric shapes.
//
// [Recognize] runs a fixed cascade of purely geometric classifiers over
// a point sequence and returns the first match as a [Shape], or nil if
// no classifier accepts the input.  A nil result is an expected outcome
// for arbitrary scribbles, not an error; callers keep the stroke as
// plain freehand markup in that case.
//
// Each shape variant converts into a [seehuhn.de/go/markup.Annotation]
// via its ToAnnotation method.
package shape

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
)

// Kind identifies a recognised shape variant.
type Kind string

// The recognised shape kinds.
const (
	KindLine     Kind = "Line"
	KindArrow    Kind = "Arrow"
	KindRect     Kind = "Rect"
	KindCircle   Kind = "Circle"
	KindEllipse  Kind = "Ellipse"
	KindTriangle Kind = "Triangle"
	KindStar     Kind = "Star"
	KindPolygon  Kind = "Polygon"
)

// Shape is a recognised idealised shape.  Each variant carries the
// minimal geometric parameters needed to instantiate an annotation.
type Shape interface {
	// Kind returns the shape variant.
	Kind() Kind

	// ToAnnotation converts the shape into an annotation on the given
	// page, using the default drawing style.
	ToAnnotation(pageIndex int) *markup.Annotation
}

var (
	_ Shape = Line{}
	_ Shape = Arrow{}
	_ Shape = Rect{}
	_ Shape = Circle{}
	_ Shape = Ellipse{}
	_ Shape = Triangle{}
	_ Shape = Star{}
	_ Shape = Polygon{}
)

// Line is a straight line segment.
type Line struct {
	Start, End vec.Vec2
}

// Kind returns [KindLine].
func (Line) Kind() Kind { return KindLine }

// Arrow is a straight line segment with an arrow head at the end.
type Arrow struct {
	Start, End vec.Vec2
}

// Kind returns [KindArrow].
func (Arrow) Kind() Kind { return KindArrow }

// Rect is an axis-aligned rectangle.
type Rect struct {
	Frame rect.Rect
}

// Kind returns [KindRect].
func (Rect) Kind() Kind { return KindRect }

// Circle is a circle given by centre and radius.  Confidence is the
// radius uniformity measure which accepted the circle, in (0.85, 1].
type Circle struct {
	Center     vec.Vec2
	Radius     float64
	Confidence float64
}

// Kind returns [KindCircle].
func (Circle) Kind() Kind { return KindCircle }

// Ellipse is an axis-aligned ellipse given by its enclosing rectangle.
type Ellipse struct {
	Frame rect.Rect
}

// Kind returns [KindEllipse].
func (Ellipse) Kind() Kind { return KindEllipse }

// Triangle is a triangle given by its three corners.
type Triangle struct {
	Corners [3]vec.Vec2
}

// Kind returns [KindTriangle].
func (Triangle) Kind() Kind { return KindTriangle }

// Star is a five-pointed star given by centre and outer radius.
type Star struct {
	Center vec.Vec2
	Radius float64
}

// Kind returns [KindStar].
func (Star) Kind() Kind { return KindStar }

// Polygon is a polygon or open polyline through the given points.
type Polygon struct {
	Points []vec.Vec2
	Closed bool
}

// Kind returns [KindPolygon].
func (Polygon) Kind() Kind { return KindPolygon }
