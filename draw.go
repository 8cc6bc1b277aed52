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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// bezierKappa is the control point distance factor for approximating a
// quarter circle with a cubic Bézier curve.
const bezierKappa = 0.552284749831

// highlighterOpacity is the blending opacity used for highlighter
// strokes when Properties.Opacity is unset.
const highlighterOpacity = 0.4

// Draw emits the annotation as a sequence of primitive drawing
// operations on the canvas.  Invalid annotations draw nothing.
// Selection and eraser "annotations" have no visual representation and
// draw nothing either.
func (a *Annotation) Draw(c Canvas) {
	if !a.IsValid() {
		return
	}

	c.PushGraphicsState()
	defer c.PopGraphicsState()

	if a.Rotation != 0 {
		ctr := a.Center()
		c.Transform(matrix.Translate(-ctr.X, -ctr.Y).
			Mul(matrix.RotateDeg(a.Rotation)).
			Mul(matrix.Translate(ctr.X, ctr.Y)))
	}

	p := &a.Properties
	strokeColor := p.StrokeColor
	if !strokeColor.IsSet() {
		strokeColor = Black
	}
	lw := p.StrokeWidth
	if lw <= 0 {
		lw = 1
	}
	c.SetStrokeColor(strokeColor)
	c.SetLineWidth(lw)
	if len(p.DashPattern) > 0 {
		c.SetLineDash(p.DashPattern, 0)
	}
	if p.Opacity > 0 && p.Opacity < 1 {
		c.SetOpacity(p.Opacity)
	}

	origin := vec.Vec2{X: a.Frame.LLx, Y: a.Frame.LLy}

	switch a.Tool {
	case ToolSelection, ToolEraser:
		// no visual representation

	case ToolPen:
		for _, path := range p.Paths {
			emitPath(c, path, origin)
			c.Stroke()
		}

	case ToolHighlighter:
		if p.Opacity == 0 {
			c.SetOpacity(highlighterOpacity)
		}
		for _, path := range p.Paths {
			emitPath(c, path, origin)
			c.Stroke()
		}

	case ToolLine:
		start, end, ok := a.endpoints()
		if !ok {
			return
		}
		c.MoveTo(start.X, start.Y)
		c.LineTo(end.X, end.Y)
		c.Stroke()
		a.drawLineEnding(c, p.StartEnding, end, start, lw)
		a.drawLineEnding(c, p.EndEnding, start, end, lw)

	case ToolArrow:
		start, end, ok := a.endpoints()
		if !ok {
			return
		}
		c.MoveTo(start.X, start.Y)
		c.LineTo(end.X, end.Y)
		c.Stroke()
		ending := p.EndEnding
		if ending == "" || ending == LineEndingNone {
			ending = LineEndingOpenArrow
		}
		a.drawLineEnding(c, ending, start, end, lw)

	case ToolRectangle:
		c.Rectangle(a.Frame.LLx, a.Frame.LLy,
			a.Frame.URx-a.Frame.LLx, a.Frame.URy-a.Frame.LLy)
		if p.FillColor.IsSet() {
			c.SetFillColor(p.FillColor)
			c.FillAndStroke()
		} else {
			c.Stroke()
		}

	case ToolOval:
		emitEllipse(c, a.Frame.LLx, a.Frame.LLy, a.Frame.URx, a.Frame.URy)
		if p.FillColor.IsSet() {
			c.SetFillColor(p.FillColor)
			c.FillAndStroke()
		} else {
			c.Stroke()
		}

	case ToolPolygon:
		for _, path := range p.Paths {
			emitPath(c, path, origin)
			if p.FillColor.IsSet() {
				c.SetFillColor(p.FillColor)
				c.FillAndStroke()
			} else {
				c.Stroke()
			}
		}

	case ToolText:
		size := p.FontSize
		if size <= 0 {
			size = 12
		}
		at := vec.Vec2{X: a.Frame.LLx, Y: a.Frame.URy - size}
		c.DrawText(p.Text, at, p.FontName, size)

	case ToolSignature:
		if p.Image != "" {
			c.DrawImage(p.Image, a.Frame)
		}

	case ToolNote:
		// note icon: filled rectangle with three text lines
		w := a.Frame.URx - a.Frame.LLx
		h := a.Frame.URy - a.Frame.LLy
		fill := p.FillColor
		if !fill.IsSet() {
			fill = RGB(1, 0.9, 0.4)
		}
		c.SetFillColor(fill)
		c.Rectangle(a.Frame.LLx, a.Frame.LLy, w, h)
		c.FillAndStroke()
		for i := 1; i <= 3; i++ {
			y := a.Frame.LLy + h*float64(i)/4
			c.MoveTo(a.Frame.LLx+w/6, y)
			c.LineTo(a.Frame.URx-w/6, y)
		}
		c.Stroke()

	case ToolMagnifier:
		// lens circle with a handle towards the lower-left corner
		w := a.Frame.URx - a.Frame.LLx
		h := a.Frame.URy - a.Frame.LLy
		r := math.Min(w, h) * 0.35
		cx := a.Frame.LLx + w*0.6
		cy := a.Frame.LLy + h*0.6
		emitEllipse(c, cx-r, cy-r, cx+r, cy+r)
		c.Stroke()
		d := r / math.Sqrt2
		c.MoveTo(cx-d, cy-d)
		c.LineTo(a.Frame.LLx+w*0.1, a.Frame.LLy+h*0.1)
		c.Stroke()
	}
}

// endpoints returns the start and end anchor points of the first path,
// in page coordinates.
func (a *Annotation) endpoints() (start, end vec.Vec2, ok bool) {
	if len(a.Properties.Paths) == 0 {
		return start, end, false
	}
	pts := a.Properties.Paths[0].Points()
	if len(pts) < 2 {
		return start, end, false
	}
	origin := vec.Vec2{X: a.Frame.LLx, Y: a.Frame.LLy}
	return pts[0].Add(origin), pts[len(pts)-1].Add(origin), true
}

// drawLineEnding draws the line ending at tip for a line coming from
// the direction of from.
func (a *Annotation) drawLineEnding(c Canvas, style LineEnding, from, tip vec.Vec2, lw float64) {
	if style == "" || style == LineEndingNone {
		return
	}

	d := tip.Sub(from)
	length := d.Length()
	if length == 0 {
		return
	}
	theta := math.Atan2(d.Y, d.X)
	headLen := math.Max(12, 4*lw)

	wing := func(angle float64) vec.Vec2 {
		return vec.Vec2{
			X: tip.X - headLen*math.Cos(theta+angle),
			Y: tip.Y - headLen*math.Sin(theta+angle),
		}
	}

	switch style {
	case LineEndingOpenArrow:
		p1 := wing(math.Pi / 6)
		p2 := wing(-math.Pi / 6)
		c.MoveTo(p1.X, p1.Y)
		c.LineTo(tip.X, tip.Y)
		c.LineTo(p2.X, p2.Y)
		c.Stroke()
	case LineEndingClosedArrow:
		p1 := wing(math.Pi / 6)
		p2 := wing(-math.Pi / 6)
		c.SetFillColor(a.Properties.StrokeColor)
		c.MoveTo(p1.X, p1.Y)
		c.LineTo(tip.X, tip.Y)
		c.LineTo(p2.X, p2.Y)
		c.ClosePath()
		c.FillAndStroke()
	case LineEndingButt:
		// short bar perpendicular to the line
		n := vec.Vec2{X: -d.Y / length, Y: d.X / length}
		c.MoveTo(tip.X+n.X*headLen/2, tip.Y+n.Y*headLen/2)
		c.LineTo(tip.X-n.X*headLen/2, tip.Y-n.Y*headLen/2)
		c.Stroke()
	case LineEndingSquare:
		s := headLen / 2
		c.Rectangle(tip.X-s/2, tip.Y-s/2, s, s)
		c.Stroke()
	case LineEndingCircle:
		s := headLen / 4
		emitEllipse(c, tip.X-s, tip.Y-s, tip.X+s, tip.Y+s)
		c.Stroke()
	}
}

// emitPath replays the path on the canvas, shifted by origin.
// Quadratic segments are emitted as degree-elevated cubics.
func emitPath(c Canvas, p Path, origin vec.Vec2) {
	var cur vec.Vec2
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			cur = s.End.Add(origin)
			c.MoveTo(cur.X, cur.Y)
		case OpLineTo:
			cur = s.End.Add(origin)
			c.LineTo(cur.X, cur.Y)
		case OpQuadTo:
			q := s.CP1.Add(origin)
			end := s.End.Add(origin)
			cp1 := vec.Vec2{
				X: cur.X + 2*(q.X-cur.X)/3,
				Y: cur.Y + 2*(q.Y-cur.Y)/3,
			}
			cp2 := vec.Vec2{
				X: end.X + 2*(q.X-end.X)/3,
				Y: end.Y + 2*(q.Y-end.Y)/3,
			}
			c.CurveTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
			cur = end
		case OpCurveTo:
			cp1 := s.CP1.Add(origin)
			cp2 := s.CP2.Add(origin)
			end := s.End.Add(origin)
			c.CurveTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
			cur = end
		case OpClose:
			c.ClosePath()
		}
	}
}

// emitEllipse appends an ellipse inscribed in the given rectangle to
// the current path, as four cubic Bézier arcs.
func emitEllipse(c Canvas, llx, lly, urx, ury float64) {
	cx := (llx + urx) / 2
	cy := (lly + ury) / 2
	rx := (urx - llx) / 2
	ry := (ury - lly) / 2
	kx := rx * bezierKappa
	ky := ry * bezierKappa

	c.MoveTo(cx+rx, cy)
	c.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.ClosePath()
}
