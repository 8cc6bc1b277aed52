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

// LineEnding is the style of a line ending, used for the start and end
// points of line and arrow annotations.
type LineEnding string

// The supported line ending styles.
const (
	LineEndingNone        LineEnding = "None"
	LineEndingOpenArrow   LineEnding = "OpenArrow"
	LineEndingClosedArrow LineEnding = "ClosedArrow"
	LineEndingButt        LineEnding = "Butt"
	LineEndingSquare      LineEnding = "Square"
	LineEndingCircle      LineEnding = "Circle"
)

// ImageRef is an opaque reference to a raster image, for example a
// scanned signature.  The engine never decodes image data; a
// collaborator resolves the reference when rendering or persisting.
type ImageRef string

// Properties is the style and content bundle of an annotation.  Which
// fields are meaningful depends on the annotation's [Tool].
type Properties struct {
	// StrokeColor is the colour used for stroking outlines and paths.
	StrokeColor Color

	// FillColor is the colour used to fill closed shapes.  If unset,
	// shapes are not filled.
	FillColor Color

	// StrokeWidth is the stroke line width in page units.
	StrokeWidth float64

	// Opacity is the blending opacity in [0, 1].  Zero means "not set"
	// and is treated as fully opaque.
	Opacity float64

	// DashPattern gives the lengths of alternating dashes and gaps.
	// An empty pattern means a solid line.
	DashPattern []float64

	// FontName and FontSize describe the font for text and note
	// annotations.  Font resolution is the renderer's concern.
	FontName string
	FontSize float64

	// Text is the text content of a text annotation.
	Text string

	// Paths is the geometry of path-bearing tools (pen, highlighter,
	// polygon, line, arrow), relative to the frame's lower-left corner.
	Paths []Path

	// Image references the raster content of signature annotations.
	Image ImageRef

	// StartEnding and EndEnding are the line ending styles of line and
	// arrow annotations.
	StartEnding LineEnding
	EndEnding   LineEnding

	// NoteText and NoteAuthor describe the pop-up note attached to a
	// note annotation.
	NoteText   string
	NoteAuthor string
}

// Clone returns a deep copy of the properties.
func (p Properties) Clone() Properties {
	q := p
	if p.DashPattern != nil {
		q.DashPattern = make([]float64, len(p.DashPattern))
		copy(q.DashPattern, p.DashPattern)
	}
	if p.Paths != nil {
		q.Paths = make([]Path, len(p.Paths))
		for i, path := range p.Paths {
			q.Paths[i] = path.Clone()
		}
	}
	return q
}
