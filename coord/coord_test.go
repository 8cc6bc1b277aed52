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

package coord

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// letterPage is a US Letter page in page units.
var letterPage = rect.Rect{LLx: 0, LLy: 0, URx: 612, URy: 792}

func TestPageToDisplay(t *testing.T) {
	testCases := []struct {
		name string
		p    vec.Vec2
		page rect.Rect
		view View
		want vec.Vec2
	}{
		{
			name: "page_origin_maps_to_bottom_left",
			p:    vec.Vec2{X: 0, Y: 0},
			page: letterPage,
			view: View{Zoom: 1},
			want: vec.Vec2{X: 0, Y: 792},
		},
		{
			name: "page_top_left_maps_to_display_origin",
			p:    vec.Vec2{X: 0, Y: 792},
			page: letterPage,
			view: View{Zoom: 1},
			want: vec.Vec2{X: 0, Y: 0},
		},
		{
			name: "zoom_and_scroll",
			p:    vec.Vec2{X: 100, Y: 700},
			page: letterPage,
			view: View{Zoom: 2, Scroll: vec.Vec2{X: 50, Y: 80}},
			want: vec.Vec2{X: 150, Y: 104},
		},
		{
			name: "rotation_90",
			p:    vec.Vec2{X: 0, Y: 0},
			page: letterPage,
			view: View{Zoom: 1, Rotation: 90},
			want: vec.Vec2{X: 792, Y: 612},
		},
		{
			name: "rotation_90_opposite_corner",
			p:    vec.Vec2{X: 612, Y: 792},
			page: letterPage,
			view: View{Zoom: 1, Rotation: 90},
			want: vec.Vec2{X: 0, Y: 0},
		},
		{
			name: "degenerate_page_is_identity",
			p:    vec.Vec2{X: 12, Y: 34},
			page: rect.Rect{},
			view: View{Zoom: 3},
			want: vec.Vec2{X: 12, Y: 34},
		},
		{
			name: "degenerate_view_falls_back_to_flip",
			p:    vec.Vec2{X: 10, Y: 20},
			page: letterPage,
			view: View{Zoom: 0},
			want: vec.Vec2{X: 10, Y: 772},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PageToDisplay(tc.p, tc.page, tc.view)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

// TestRoundTrip checks that DisplayToPage inverts PageToDisplay for a
// grid of points and a range of views, including rotations which are
// not multiples of 90 degrees.
func TestRoundTrip(t *testing.T) {
	views := []View{
		{Zoom: 1},
		{Zoom: 2.5, Scroll: vec.Vec2{X: 120, Y: -40}},
		{Zoom: 0.25, Scroll: vec.Vec2{X: -3, Y: 17}, Rotation: 90},
		{Zoom: 1.5, Rotation: 180},
		{Zoom: 3, Scroll: vec.Vec2{X: 50, Y: 60}, Rotation: 37.5},
		{Zoom: 0.8, Rotation: -270},
	}
	for _, view := range views {
		for _, x := range []float64{0, 17.5, 306, 612} {
			for _, y := range []float64{0, 100.25, 396, 792} {
				p := vec.Vec2{X: x, Y: y}
				q := DisplayToPage(PageToDisplay(p, letterPage, view), letterPage, view)
				if math.Abs(q.X-p.X) > 1e-6 || math.Abs(q.Y-p.Y) > 1e-6 {
					t.Errorf("view %+v: round trip of %v gave %v", view, p, q)
				}
			}
		}
	}
}

// TestRectRoundTrip checks that rectangle conversion is exactly
// invertible for axis-preserving rotations.  For other angles the
// display rectangle is the bounding box of the rotated corners, so
// only the forward direction is checked for well-formedness.
func TestRectRoundTrip(t *testing.T) {
	r := rect.Rect{LLx: 100, LLy: 150, URx: 300, URy: 250}

	for _, rot := range []float64{0, 90, 180, 270} {
		view := View{Zoom: 2, Scroll: vec.Vec2{X: 10, Y: 20}, Rotation: rot}
		d := PageRectToDisplay(r, letterPage, view)
		back := DisplayRectToPage(d, letterPage, view)
		if math.Abs(back.LLx-r.LLx) > 1e-6 || math.Abs(back.LLy-r.LLy) > 1e-6 ||
			math.Abs(back.URx-r.URx) > 1e-6 || math.Abs(back.URy-r.URy) > 1e-6 {
			t.Errorf("rotation %g: round trip of %v gave %v", rot, r, back)
		}
	}

	d := PageRectToDisplay(r, letterPage, View{Zoom: 1, Rotation: 45})
	if d.URx <= d.LLx || d.URy <= d.LLy {
		t.Errorf("rotated rect is not well-formed: %v", d)
	}
}

func TestIsWithinBounds(t *testing.T) {
	testCases := []struct {
		name string
		p    vec.Vec2
		want bool
	}{
		{"inside", vec.Vec2{X: 300, Y: 400}, true},
		{"on_edge", vec.Vec2{X: 612, Y: 792}, true},
		{"outside_x", vec.Vec2{X: 613, Y: 400}, false},
		{"negative_y", vec.Vec2{X: 300, Y: -1}, false},
		{"nan", vec.Vec2{X: math.NaN(), Y: 400}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWithinBounds(tc.p, letterPage); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestIsValidSize(t *testing.T) {
	testCases := []struct {
		name string
		size vec.Vec2
		want bool
	}{
		{"normal", vec.Vec2{X: 100, Y: 50}, true},
		{"at_ratio_limit", vec.Vec2{X: 612 * 0.9, Y: 792 * 0.9}, true},
		{"too_wide", vec.Vec2{X: 612*0.9 + 1, Y: 50}, false},
		{"zero_height", vec.Vec2{X: 100, Y: 0}, false},
		{"negative", vec.Vec2{X: -10, Y: 10}, false},
		{"infinite", vec.Vec2{X: math.Inf(1), Y: 10}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidSize(tc.size, letterPage, 0); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}
