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
)

// Simplify reduces a polyline using the Douglas–Peucker algorithm: the
// point with the largest perpendicular distance from the chord between
// the first and last point is located; if this distance exceeds
// epsilon, both halves are simplified recursively, otherwise the whole
// sequence collapses to its two end points.
//
// The input slice is not modified.
func Simplify(points []vec.Vec2, epsilon float64) []vec.Vec2 {
	if len(points) < 3 {
		out := make([]vec.Vec2, len(points))
		copy(out, points)
		return out
	}

	first := points[0]
	last := points[len(points)-1]

	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > epsilon {
		left := Simplify(points[:maxIdx+1], epsilon)
		right := Simplify(points[maxIdx:], epsilon)
		// the split point appears in both halves
		return append(left[:len(left)-1], right...)
	}
	return []vec.Vec2{first, last}
}

// perpendicularDistance returns the distance from p to the line through
// a and b.  If a and b coincide, the distance from p to a is returned.
func perpendicularDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return p.Sub(a).Length()
	}
	return math.Abs(d.X*(a.Y-p.Y)-d.Y*(a.X-p.X)) / length
}

// polylineLength returns the total length of the polyline through the
// given points.
func polylineLength(points []vec.Vec2) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1]).Length()
	}
	return total
}

// centroid returns the arithmetic mean of the given points.
func centroid(points []vec.Vec2) vec.Vec2 {
	var c vec.Vec2
	for _, p := range points {
		c = c.Add(p)
	}
	n := float64(len(points))
	return vec.Vec2{X: c.X / n, Y: c.Y / n}
}
