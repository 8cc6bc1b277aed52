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

package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
)

// starInnerRatio is the ratio of inner to outer radius of the
// generated star outline.
const starInnerRatio = 0.4

// starPoints is the number of spikes of the generated star outline.
const starPoints = 5

// defaultStyle is the drawing style given to annotations created from
// recognised shapes.
func defaultStyle() markup.Properties {
	return markup.Properties{
		StrokeColor: markup.Black,
		StrokeWidth: 2,
	}
}

// ToAnnotation converts the line into a line annotation.
func (s Line) ToAnnotation(pageIndex int) *markup.Annotation {
	paths := []markup.Path{markup.Line(s.Start, s.End)}
	return markup.NewStroke(markup.ToolLine, paths, pageIndex, defaultStyle())
}

// ToAnnotation converts the arrow into an arrow annotation with an
// open arrow head at the end point.
func (s Arrow) ToAnnotation(pageIndex int) *markup.Annotation {
	paths := []markup.Path{markup.Line(s.Start, s.End)}
	props := defaultStyle()
	props.EndEnding = markup.LineEndingOpenArrow
	return markup.NewStroke(markup.ToolArrow, paths, pageIndex, props)
}

// ToAnnotation converts the rectangle into a rectangle annotation.
func (s Rect) ToAnnotation(pageIndex int) *markup.Annotation {
	a := markup.New(markup.ToolRectangle, s.Frame, pageIndex)
	a.Properties = defaultStyle()
	return a
}

// ToAnnotation converts the circle into an oval annotation whose frame
// is the square enclosing the circle.
func (s Circle) ToAnnotation(pageIndex int) *markup.Annotation {
	frame := boundingBox([]vec.Vec2{
		{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius},
		{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius},
	})
	a := markup.New(markup.ToolOval, frame, pageIndex)
	a.Properties = defaultStyle()
	return a
}

// ToAnnotation converts the ellipse into an oval annotation.
func (s Ellipse) ToAnnotation(pageIndex int) *markup.Annotation {
	a := markup.New(markup.ToolOval, s.Frame, pageIndex)
	a.Properties = defaultStyle()
	return a
}

// ToAnnotation converts the triangle into a polygon annotation with a
// closed three-corner path.
func (s Triangle) ToAnnotation(pageIndex int) *markup.Annotation {
	paths := []markup.Path{markup.Polyline(s.Corners[:], true)}
	return markup.NewStroke(markup.ToolPolygon, paths, pageIndex, defaultStyle())
}

// ToAnnotation converts the star into a polygon annotation with a
// generated ten-point star outline, alternating between the outer
// radius and [starInnerRatio] times the outer radius, with the first
// spike pointing up.
func (s Star) ToAnnotation(pageIndex int) *markup.Annotation {
	pts := make([]vec.Vec2, 2*starPoints)
	for i := range pts {
		r := s.Radius
		if i%2 == 1 {
			r = s.Radius * starInnerRatio
		}
		angle := math.Pi/2 + float64(i)*math.Pi/starPoints
		pts[i] = vec.Vec2{
			X: s.Center.X + r*math.Cos(angle),
			Y: s.Center.Y + r*math.Sin(angle),
		}
	}
	paths := []markup.Path{markup.Polyline(pts, true)}
	return markup.NewStroke(markup.ToolPolygon, paths, pageIndex, defaultStyle())
}

// ToAnnotation converts the polygon into a polygon annotation.  Open
// polylines stay open.
func (s Polygon) ToAnnotation(pageIndex int) *markup.Annotation {
	paths := []markup.Path{markup.Polyline(s.Points, s.Closed)}
	return markup.NewStroke(markup.ToolPolygon, paths, pageIndex, defaultStyle())
}
