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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Config holds the numeric thresholds of the recognizer cascade.  The
// values of [DefaultConfig] are part of the recognition contract;
// recorded point sequences classified with them give reproducible
// results.
type Config struct {
	// MinStraightness is the smallest ratio of chord length to
	// polyline length accepted for lines and arrows.
	MinStraightness float64

	// ArrowHookEpsilon is the simplification tolerance applied to the
	// stroke tail when looking for an arrow-head hook.
	ArrowHookEpsilon float64

	// ArrowTailPoints is the number of trailing points inspected for
	// an arrow-head hook.
	ArrowTailPoints int

	// RectEpsilon is the simplification tolerance for rectangle
	// detection.
	RectEpsilon float64

	// CloseDistance is the largest distance between the first and last
	// point of a stroke still treated as a closed loop.
	CloseDistance float64

	// RightAngleTolerance is the tolerated deviation from 90 degrees
	// at rectangle corners, in degrees.
	RightAngleTolerance float64

	// MinRoundPoints is the point count which circle and ellipse
	// detection require to be exceeded.
	MinRoundPoints int

	// CircleConfidence is the smallest radius uniformity accepted for
	// circles.
	CircleConfidence float64

	// EllipseResidual is the largest mean ellipse-equation residual
	// accepted for ellipses.
	EllipseResidual float64

	// TriangleEpsilon is the simplification tolerance for triangle
	// detection.
	TriangleEpsilon float64

	// StarEpsilon is the simplification tolerance for star detection.
	StarEpsilon float64

	// PolygonEpsilon is the simplification tolerance for the polygon
	// fallback.
	PolygonEpsilon float64
}

// DefaultConfig returns the standard recognizer thresholds.
func DefaultConfig() Config {
	return Config{
		MinStraightness:     0.95,
		ArrowHookEpsilon:    5,
		ArrowTailPoints:     5,
		RectEpsilon:         10,
		CloseDistance:       20,
		RightAngleTolerance: 15,
		MinRoundPoints:      8,
		CircleConfidence:    0.85,
		EllipseResidual:     0.2,
		TriangleEpsilon:     15,
		StarEpsilon:         10,
		PolygonEpsilon:      12,
	}
}

// Recognize classifies a freehand point sequence into an idealised
// shape.  The classifiers are tried in a fixed order (line/arrow,
// rectangle, circle, ellipse, triangle, arrow, star, polygon); the
// first match wins.  Recognize returns nil if no classifier accepts
// the input or if the input has fewer than three points.
func Recognize(points []vec.Vec2, cfg Config) Shape {
	if len(points) < 3 {
		return nil
	}

	if s := recognizeLineOrArrow(points, cfg); s != nil {
		return s
	}
	if s := recognizeRectangle(points, cfg); s != nil {
		return s
	}
	if s := recognizeCircle(points, cfg); s != nil {
		return s
	}
	if s := recognizeEllipse(points, cfg); s != nil {
		return s
	}
	if s := recognizeTriangle(points, cfg); s != nil {
		return s
	}
	if s := recognizeArrow(points, cfg); s != nil {
		return s
	}
	if s := recognizeStar(points, cfg); s != nil {
		return s
	}
	if s := recognizePolygon(points, cfg); s != nil {
		return s
	}
	return nil
}

// straightness returns the ratio of the chord length between the first
// and last point to the total polyline length.
func straightness(points []vec.Vec2) float64 {
	total := polylineLength(points)
	if total == 0 {
		return 0
	}
	chord := points[len(points)-1].Sub(points[0]).Length()
	return chord / total
}

// hasArrowHook reports whether the stroke tail, simplified with the
// arrow hook tolerance, still contains at least three vertices.  A
// freehand arrow head folds back on itself near the end of the stroke
// and survives simplification as extra vertices.
func hasArrowHook(points []vec.Vec2, cfg Config) bool {
	n := cfg.ArrowTailPoints
	if len(points) < n {
		return false
	}
	tail := Simplify(points[len(points)-n:], cfg.ArrowHookEpsilon)
	return len(tail) >= 3
}

func recognizeLineOrArrow(points []vec.Vec2, cfg Config) Shape {
	if straightness(points) <= cfg.MinStraightness {
		return nil
	}
	start := points[0]
	end := points[len(points)-1]
	if hasArrowHook(points, cfg) {
		return Arrow{Start: start, End: end}
	}
	return Line{Start: start, End: end}
}

// recognizeArrow is the late arrow classifier: it accepts strokes whose
// base line is straight enough, gated on the arrow-head hook.  It only
// matters for inputs which earlier classifiers rejected.
func recognizeArrow(points []vec.Vec2, cfg Config) Shape {
	if straightness(points) <= cfg.MinStraightness {
		return nil
	}
	if !hasArrowHook(points, cfg) {
		return nil
	}
	return Arrow{Start: points[0], End: points[len(points)-1]}
}

func recognizeRectangle(points []vec.Vec2, cfg Config) Shape {
	simplified := Simplify(points, cfg.RectEpsilon)
	corners, ok := closedCorners(simplified, 4, cfg.CloseDistance)
	if !ok {
		return nil
	}

	// all four corner angles must be right angles
	for i := range corners {
		prev := corners[(i+3)%4]
		next := corners[(i+1)%4]
		angle := vertexAngle(corners[i], prev, next)
		if math.Abs(angle-90) > cfg.RightAngleTolerance {
			return nil
		}
	}

	// Each corner must lie near a corner of the bounding box.  A
	// circle simplifies to a diamond whose vertices also pass the
	// right-angle test, but they sit at the edge midpoints of the
	// bounding box, not at its corners.
	frame := boundingBox(corners)
	boxCorners := [4]vec.Vec2{
		{X: frame.LLx, Y: frame.LLy},
		{X: frame.URx, Y: frame.LLy},
		{X: frame.URx, Y: frame.URy},
		{X: frame.LLx, Y: frame.URy},
	}
	for _, c := range corners {
		best := math.Inf(1)
		for _, bc := range boxCorners {
			best = math.Min(best, c.Sub(bc).Length())
		}
		if best > cfg.CloseDistance {
			return nil
		}
	}

	return Rect{Frame: frame}
}

func recognizeCircle(points []vec.Vec2, cfg Config) Shape {
	if len(points) <= cfg.MinRoundPoints {
		return nil
	}
	c := centroid(points)

	radii := make([]float64, len(points))
	var mean float64
	for i, p := range points {
		radii[i] = p.Sub(c).Length()
		mean += radii[i]
	}
	mean /= float64(len(radii))
	if mean == 0 {
		return nil
	}

	var variance float64
	for _, r := range radii {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(radii))

	confidence := 1 - math.Sqrt(variance)/mean
	if confidence <= cfg.CircleConfidence {
		return nil
	}
	return Circle{Center: c, Radius: mean, Confidence: confidence}
}

func recognizeEllipse(points []vec.Vec2, cfg Config) Shape {
	if len(points) <= cfg.MinRoundPoints {
		return nil
	}

	frame := boundingBox(points)
	cx := (frame.LLx + frame.URx) / 2
	cy := (frame.LLy + frame.URy) / 2
	rx := (frame.URx - frame.LLx) / 2
	ry := (frame.URy - frame.LLy) / 2
	if rx == 0 || ry == 0 {
		return nil
	}

	var residual float64
	for _, p := range points {
		dx := (p.X - cx) / rx
		dy := (p.Y - cy) / ry
		residual += math.Abs(dx*dx + dy*dy - 1)
	}
	residual /= float64(len(points))

	if residual >= cfg.EllipseResidual {
		return nil
	}
	return Ellipse{Frame: frame}
}

func recognizeTriangle(points []vec.Vec2, cfg Config) Shape {
	simplified := Simplify(points, cfg.TriangleEpsilon)
	corners, ok := closedCorners(simplified, 3, cfg.CloseDistance)
	if !ok {
		return nil
	}
	return Triangle{Corners: [3]vec.Vec2{corners[0], corners[1], corners[2]}}
}

func recognizeStar(points []vec.Vec2, cfg Config) Shape {
	simplified := Simplify(points, cfg.StarEpsilon)
	if len(simplified) < 8 || len(simplified) > 12 {
		return nil
	}

	c := centroid(simplified)
	dists := make([]float64, len(simplified))
	var sum, maxDist float64
	for i, p := range simplified {
		dists[i] = p.Sub(c).Length()
		sum += dists[i]
		maxDist = math.Max(maxDist, dists[i])
	}
	avg := sum / float64(len(dists))

	// outer and inner vertices of a star alternate around the average
	for i := 1; i < len(dists); i++ {
		if (dists[i-1] > avg) == (dists[i] > avg) {
			return nil
		}
	}
	return Star{Center: c, Radius: maxDist}
}

func recognizePolygon(points []vec.Vec2, cfg Config) Shape {
	simplified := Simplify(points, cfg.PolygonEpsilon)
	if len(simplified) < 3 || len(simplified) > 12 {
		return nil
	}

	closed := false
	first := simplified[0]
	last := simplified[len(simplified)-1]
	if last.Sub(first).Length() <= cfg.CloseDistance {
		simplified = simplified[:len(simplified)-1]
		closed = true
		if len(simplified) < 3 {
			return nil
		}
	}
	return Polygon{Points: simplified, Closed: closed}
}

// closedCorners interprets a simplified polyline as a closed shape with
// the given number of corners.  It accepts either exactly n points, or
// n+1 points whose first and last point are within closeDist of each
// other; in the latter case the duplicated closing point is dropped.
func closedCorners(points []vec.Vec2, n int, closeDist float64) ([]vec.Vec2, bool) {
	switch len(points) {
	case n:
		return points, true
	case n + 1:
		first := points[0]
		last := points[len(points)-1]
		if last.Sub(first).Length() <= closeDist {
			return points[:n], true
		}
	}
	return nil, false
}

// vertexAngle returns the interior angle at vertex v between the edges
// towards a and b, in degrees.
func vertexAngle(v, a, b vec.Vec2) float64 {
	u := a.Sub(v)
	w := b.Sub(v)
	lu := u.Length()
	lw := w.Length()
	if lu == 0 || lw == 0 {
		return 0
	}
	cos := (u.X*w.X + u.Y*w.Y) / (lu * lw)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// boundingBox returns the axis-aligned bounding box of the points.
func boundingBox(points []vec.Vec2) rect.Rect {
	b := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		b.LLx = math.Min(b.LLx, p.X)
		b.LLy = math.Min(b.LLy, p.Y)
		b.URx = math.Max(b.URx, p.X)
		b.URy = math.Max(b.URy, p.Y)
	}
	return b
}
