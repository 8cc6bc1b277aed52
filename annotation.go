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
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// HitTestPadding is the outward margin, in page units, added around an
// annotation's frame during hit-testing.  The margin makes small
// annotations easier to select.
const HitTestPadding = 8.0

// minFrameExtent is the smallest frame width/height assigned by the
// factory functions.  Degenerate stroke geometry (a horizontal line has
// a zero-height bounding box) is padded to this extent so that the
// resulting annotation satisfies [Annotation.IsValid].
const minFrameExtent = 1.0

// Annotation is a single markup object placed on a document page.
//
// The frame rectangle, in page coordinates, is the single source of
// truth for the annotation's position and size; all hit-testing and
// drawing derives from the frame together with the rotation angle.
type Annotation struct {
	// ID is the stable identity of the annotation.  It is assigned at
	// construction time and never changes.
	ID uuid.UUID

	// Tool is the editing tool which created the annotation.
	Tool Tool

	// Frame is the bounding rectangle in page coordinates.
	Frame rect.Rect

	// PageIndex is the zero-based index of the page the annotation
	// belongs to.
	PageIndex int

	// Rotation is the rotation angle in degrees, counter-clockwise
	// about the frame centre.
	Rotation float64

	// ZIndex determines paint and selection order.  Larger values are
	// painted later, i.e. on top.
	ZIndex int

	// Properties holds the style and content of the annotation.
	Properties Properties

	// Selected, Editing and Dragging are transient interaction state.
	// They are not copied by Copy and not captured in snapshots.
	Selected bool
	Editing  bool
	Dragging bool

	// CreatedAt and ModifiedAt are the creation and last modification
	// times.
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// New returns a new annotation with a fresh identity.
func New(tool Tool, frame rect.Rect, pageIndex int) *Annotation {
	now := time.Now()
	return &Annotation{
		ID:         uuid.New(),
		Tool:       tool,
		Frame:      frame,
		PageIndex:  pageIndex,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// NewStroke returns an annotation for the given tool whose geometry is
// the given paths in page coordinates.  The frame is the joint bounding
// box of the paths, padded by half the stroke width, and the paths are
// stored relative to the frame's lower-left corner.
func NewStroke(tool Tool, paths []Path, pageIndex int, props Properties) *Annotation {
	bbox := PathsBBox(paths)
	pad := props.StrokeWidth / 2
	bbox.LLx -= pad
	bbox.LLy -= pad
	bbox.URx += pad
	bbox.URy += pad
	if bbox.URx-bbox.LLx < minFrameExtent {
		mid := (bbox.LLx + bbox.URx) / 2
		bbox.LLx = mid - minFrameExtent/2
		bbox.URx = mid + minFrameExtent/2
	}
	if bbox.URy-bbox.LLy < minFrameExtent {
		mid := (bbox.LLy + bbox.URy) / 2
		bbox.LLy = mid - minFrameExtent/2
		bbox.URy = mid + minFrameExtent/2
	}

	a := New(tool, bbox, pageIndex)
	origin := vec.Vec2{X: -bbox.LLx, Y: -bbox.LLy}
	local := make([]Path, len(paths))
	for i, p := range paths {
		local[i] = p.Translate(origin)
	}
	props.Paths = local
	a.Properties = props
	return a
}

// NewSignature returns a signature annotation showing the referenced
// image inside the given frame.
func NewSignature(image ImageRef, frame rect.Rect, pageIndex int) *Annotation {
	a := New(ToolSignature, frame, pageIndex)
	a.Properties.Image = image
	return a
}

// NewText returns a text annotation with the given content.
func NewText(text string, frame rect.Rect, pageIndex int) *Annotation {
	a := New(ToolText, frame, pageIndex)
	a.Properties.Text = text
	a.Properties.StrokeColor = Black
	return a
}

// NewNote returns a note annotation anchored at the given point.  The
// note icon has a fixed size of 24×24 page units.
func NewNote(text, author string, at vec.Vec2, pageIndex int) *Annotation {
	frame := rect.Rect{LLx: at.X, LLy: at.Y, URx: at.X + 24, URy: at.Y + 24}
	a := New(ToolNote, frame, pageIndex)
	a.Properties.NoteText = text
	a.Properties.NoteAuthor = author
	return a
}

// IsValid reports whether the annotation has a finite frame with
// positive width and height.  Annotations failing this test are
// rejected from all spatial operations.
func (a *Annotation) IsValid() bool {
	w := a.Frame.URx - a.Frame.LLx
	h := a.Frame.URy - a.Frame.LLy
	if !isFinite(a.Frame.LLx) || !isFinite(a.Frame.LLy) ||
		!isFinite(w) || !isFinite(h) {
		return false
	}
	return w > 0 && h > 0
}

// Center returns the centre of the annotation's frame.
func (a *Annotation) Center() vec.Vec2 {
	return vec.Vec2{
		X: (a.Frame.LLx + a.Frame.URx) / 2,
		Y: (a.Frame.LLy + a.Frame.URy) / 2,
	}
}

// Contains reports whether the page-space point p hits the annotation.
// The test accounts for the annotation's rotation and includes an
// outward margin of [HitTestPadding] around the frame.
func (a *Annotation) Contains(p vec.Vec2) bool {
	if !a.IsValid() {
		return false
	}
	if a.Rotation != 0 {
		// undo the rotation about the frame centre
		c := a.Center()
		M := matrix.Translate(-c.X, -c.Y).
			Mul(matrix.RotateDeg(-a.Rotation)).
			Mul(matrix.Translate(c.X, c.Y))
		p.X, p.Y = M.Apply(p.X, p.Y)
	}
	return p.X >= a.Frame.LLx-HitTestPadding &&
		p.X <= a.Frame.URx+HitTestPadding &&
		p.Y >= a.Frame.LLy-HitTestPadding &&
		p.Y <= a.Frame.URy+HitTestPadding
}

// Copy returns a deep copy of the annotation with a new identity.
// Tool, frame, properties, rotation and z-index are preserved;
// transient interaction state is cleared.
func (a *Annotation) Copy() *Annotation {
	now := time.Now()
	return &Annotation{
		ID:         uuid.New(),
		Tool:       a.Tool,
		Frame:      a.Frame,
		PageIndex:  a.PageIndex,
		Rotation:   a.Rotation,
		ZIndex:     a.ZIndex,
		Properties: a.Properties.Clone(),
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Snapshot is a value capture of an annotation's mutable state, used
// for undo support.
type Snapshot struct {
	Frame      rect.Rect
	Properties Properties
	Rotation   float64
	ZIndex     int
}

// TakeSnapshot captures the annotation's frame, properties, rotation
// and z-index.
func (a *Annotation) TakeSnapshot() Snapshot {
	return Snapshot{
		Frame:      a.Frame,
		Properties: a.Properties.Clone(),
		Rotation:   a.Rotation,
		ZIndex:     a.ZIndex,
	}
}

// Restore resets the annotation to a previously captured snapshot and
// updates the modification time.
func (a *Annotation) Restore(s Snapshot) {
	a.Frame = s.Frame
	a.Properties = s.Properties.Clone()
	a.Rotation = s.Rotation
	a.ZIndex = s.ZIndex
	a.ModifiedAt = time.Now()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
