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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Canvas receives the primitive drawing operations emitted by
// [Annotation.Draw].  A rendering collaborator implements Canvas on top
// of its graphics system; the engine itself never rasterises anything.
//
// The coordinate system of a Canvas is page space.  Converting to
// display space is the renderer's responsibility, typically by applying
// the transform from [seehuhn.de/go/markup/coord] before drawing.
type Canvas interface {
	// PushGraphicsState saves the current graphics state.
	PushGraphicsState()

	// PopGraphicsState restores the most recently saved graphics state.
	PopGraphicsState()

	// Transform prepends m to the current transformation matrix.
	Transform(m matrix.Matrix)

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	SetLineDash(pattern []float64, phase float64)

	// SetOpacity sets the blending opacity for both stroking and
	// filling, in the range [0, 1].
	SetOpacity(alpha float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)

	// CurveTo appends a cubic Bézier segment with control points
	// (x1, y1) and (x2, y2) and end point (x3, y3).
	CurveTo(x1, y1, x2, y2, x3, y3 float64)

	ClosePath()

	// Rectangle appends a closed rectangle with lower-left corner
	// (x, y) to the current path.
	Rectangle(x, y, w, h float64)

	// Stroke strokes the current path and clears it.
	Stroke()

	// Fill fills the current path and clears it.
	Fill()

	// FillAndStroke first fills and then strokes the current path, and
	// clears it.
	FillAndStroke()

	// DrawText shows the given text with its first baseline starting
	// at the given point.  Font resolution is the renderer's concern;
	// fontName may be empty.
	DrawText(text string, at vec.Vec2, fontName string, fontSize float64)

	// DrawImage draws the referenced image scaled into the given
	// rectangle.  The renderer resolves the reference.
	DrawImage(image ImageRef, frame rect.Rect)
}
