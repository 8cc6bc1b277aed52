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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestNewStroke(t *testing.T) {
	pts := []vec.Vec2{{X: 10, Y: 100}, {X: 50, Y: 120}, {X: 90, Y: 100}}
	props := Properties{StrokeColor: Black, StrokeWidth: 4}

	a := NewStroke(ToolPen, []Path{Polyline(pts, false)}, 2, props)

	if a.Tool != ToolPen || a.PageIndex != 2 {
		t.Errorf("tool %q page %d", a.Tool, a.PageIndex)
	}

	// the frame is the path bounding box, padded by half the stroke
	// width
	want := rect.Rect{LLx: 8, LLy: 98, URx: 92, URy: 122}
	if a.Frame != want {
		t.Errorf("frame %v, want %v", a.Frame, want)
	}

	// stored path coordinates are relative to the frame corner
	local := a.Properties.Paths[0].Points()
	wantLocal := []vec.Vec2{{X: 2, Y: 2}, {X: 42, Y: 22}, {X: 82, Y: 2}}
	if d := cmp.Diff(wantLocal, local); d != "" {
		t.Errorf("unexpected local points (-want +got):\n%s", d)
	}
}

// TestNewStrokeDegenerate checks that a horizontal stroke with zero
// stroke width still produces a valid annotation.
func TestNewStrokeDegenerate(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 50}, {X: 100, Y: 50}}
	a := NewStroke(ToolPen, []Path{Polyline(pts, false)}, 0, Properties{})

	if !a.IsValid() {
		t.Errorf("degenerate stroke produced invalid frame %v", a.Frame)
	}
	if h := a.Frame.URy - a.Frame.LLy; h < 1 {
		t.Errorf("frame height %g, want at least 1", h)
	}
}

func TestIsValid(t *testing.T) {
	testCases := []struct {
		name  string
		frame rect.Rect
		want  bool
	}{
		{"normal", rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, true},
		{"zero", rect.Rect{}, false},
		{"negative_width", rect.Rect{LLx: 10, LLy: 0, URx: 0, URy: 10}, false},
		{"nan", rect.Rect{LLx: math.NaN(), URx: 10, URy: 10}, false},
		{"infinite", rect.Rect{URx: math.Inf(1), URy: 10}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(ToolRectangle, tc.frame, 0)
			if got := a.IsValid(); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	a := New(ToolRectangle, rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 10}, 0)

	testCases := []struct {
		name     string
		rotation float64
		p        vec.Vec2
		want     bool
	}{
		{"inside", 0, vec.Vec2{X: 50, Y: 5}, true},
		{"within_padding", 0, vec.Vec2{X: -7, Y: 5}, true},
		{"beyond_padding", 0, vec.Vec2{X: -9, Y: 5}, false},
		{"above", 0, vec.Vec2{X: 50, Y: 50}, false},

		// rotating the wide flat frame by 90 degrees about its centre
		// (50, 5) makes it tall and narrow
		{"rotated_hit", 90, vec.Vec2{X: 50, Y: 50}, true},
		{"rotated_miss", 90, vec.Vec2{X: 95, Y: 5}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a.Rotation = tc.rotation
			if got := a.Contains(tc.p); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	a := New(ToolPolygon, rect.Rect{LLx: 1, LLy: 2, URx: 30, URy: 40}, 3)
	a.Rotation = 45
	a.ZIndex = 7
	a.Selected = true
	a.Dragging = true
	a.Properties = Properties{
		StrokeColor: Black,
		StrokeWidth: 2,
		DashPattern: []float64{3, 1},
		Paths:       []Path{Line(vec.Vec2{}, vec.Vec2{X: 5, Y: 5})},
	}

	b := a.Copy()

	if b.ID == a.ID {
		t.Error("copy shares the original's identity")
	}
	if b.Frame != a.Frame || b.Rotation != a.Rotation || b.ZIndex != a.ZIndex {
		t.Error("geometry not copied")
	}
	if b.Selected || b.Editing || b.Dragging {
		t.Error("transient state not cleared")
	}

	// deep copy: mutating the copy leaves the original alone
	b.Properties.DashPattern[0] = 99
	b.Properties.Paths[0][1].End = vec.Vec2{X: -1, Y: -1}
	if a.Properties.DashPattern[0] != 3 {
		t.Error("dash pattern storage is shared")
	}
	if a.Properties.Paths[0][1].End != (vec.Vec2{X: 5, Y: 5}) {
		t.Error("path storage is shared")
	}
}

func TestSnapshotRestore(t *testing.T) {
	a := New(ToolRectangle, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, 0)
	a.Properties = Properties{StrokeColor: Black, StrokeWidth: 2}
	a.Rotation = 30
	a.ZIndex = 4

	snap := a.TakeSnapshot()

	a.Frame = rect.Rect{LLx: 100, LLy: 100, URx: 200, URy: 150}
	a.Properties.StrokeWidth = 9
	a.Rotation = 0
	a.ZIndex = 1

	a.Restore(snap)

	if a.Frame != (rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}) {
		t.Errorf("frame %v not restored", a.Frame)
	}
	if a.Properties.StrokeWidth != 2 || a.Rotation != 30 || a.ZIndex != 4 {
		t.Error("state not restored")
	}
}

func TestNewNote(t *testing.T) {
	a := NewNote("check this", "alex", vec.Vec2{X: 40, Y: 60}, 1)

	if a.Tool != ToolNote {
		t.Errorf("tool %q, want %q", a.Tool, ToolNote)
	}
	want := rect.Rect{LLx: 40, LLy: 60, URx: 64, URy: 84}
	if a.Frame != want {
		t.Errorf("frame %v, want %v", a.Frame, want)
	}
	if a.Properties.NoteText != "check this" || a.Properties.NoteAuthor != "alex" {
		t.Error("note content not stored")
	}
}

func TestToolPredicates(t *testing.T) {
	if Tool("Scribble").Valid() {
		t.Error("unknown tool reported as valid")
	}
	if !ToolPen.Valid() || !ToolMagnifier.Valid() {
		t.Error("known tool reported as invalid")
	}
	if !ToolHighlighter.UsesPaths() || ToolRectangle.UsesPaths() {
		t.Error("unexpected UsesPaths classification")
	}
}
