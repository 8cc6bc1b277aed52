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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestSimplify(t *testing.T) {
	testCases := []struct {
		name    string
		pts     []vec.Vec2
		epsilon float64
		want    []vec.Vec2
	}{
		{
			name: "collinear_collapses_to_endpoints",
			pts: []vec.Vec2{
				{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30},
			},
			epsilon: 1,
			want:    []vec.Vec2{{X: 0, Y: 0}, {X: 30, Y: 30}},
		},
		{
			name: "corner_survives",
			pts: []vec.Vec2{
				{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0},
				{X: 100, Y: 50}, {X: 100, Y: 100},
			},
			epsilon: 5,
			want: []vec.Vec2{
				{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100},
			},
		},
		{
			name: "small_wiggle_removed",
			pts: []vec.Vec2{
				{X: 0, Y: 0}, {X: 25, Y: 3}, {X: 50, Y: -2},
				{X: 75, Y: 4}, {X: 100, Y: 0},
			},
			epsilon: 5,
			want:    []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}},
		},
		{
			name:    "two_points_unchanged",
			pts:     []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
			epsilon: 10,
			want:    []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Simplify(tc.pts, tc.epsilon)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("unexpected result (-want +got):\n%s", d)
			}
		})
	}
}

// TestSimplifyPreservesInput checks that the input slice is left
// untouched even though simplification splits and rejoins it.
func TestSimplifyPreservesInput(t *testing.T) {
	pts := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 40}, {X: 20, Y: 0},
		{X: 30, Y: 40}, {X: 40, Y: 0},
	}
	orig := make([]vec.Vec2, len(pts))
	copy(orig, pts)

	Simplify(pts, 5)

	if d := cmp.Diff(orig, pts); d != "" {
		t.Errorf("input modified (-want +got):\n%s", d)
	}
}
