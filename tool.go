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

// Tool identifies the editing tool which created an annotation.  The
// tool determines which [Properties] fields are meaningful and how the
// annotation is drawn.
type Tool string

// The set of supported tools.
const (
	ToolSelection   Tool = "Selection"
	ToolPen         Tool = "Pen"
	ToolHighlighter Tool = "Highlighter"
	ToolEraser      Tool = "Eraser"
	ToolArrow       Tool = "Arrow"
	ToolLine        Tool = "Line"
	ToolRectangle   Tool = "Rectangle"
	ToolOval        Tool = "Oval"
	ToolPolygon     Tool = "Polygon"
	ToolText        Tool = "Text"
	ToolSignature   Tool = "Signature"
	ToolNote        Tool = "Note"
	ToolMagnifier   Tool = "Magnifier"
)

// Valid reports whether t is one of the supported tools.
func (t Tool) Valid() bool {
	switch t {
	case ToolSelection, ToolPen, ToolHighlighter, ToolEraser,
		ToolArrow, ToolLine, ToolRectangle, ToolOval, ToolPolygon,
		ToolText, ToolSignature, ToolNote, ToolMagnifier:
		return true
	default:
		return false
	}
}

// UsesPaths reports whether annotations made with t carry their
// geometry in Properties.Paths.
func (t Tool) UsesPaths() bool {
	switch t {
	case ToolPen, ToolHighlighter, ToolPolygon, ToolLine, ToolArrow:
		return true
	default:
		return false
	}
}
