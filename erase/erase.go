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

// Package erase removes or trims annotations under a moving eraser
// footprint.
//
// A [Session] covers one erase gesture, from the moment the eraser
// touches the page until it is lifted.  During the gesture the session
// only collects results: wholly erased annotations are recorded by
// identity, partially trimmed annotations are accumulated in
// gesture-scoped working copies.  The live annotations are never
// modified; the caller commits the session's [Result] at gesture end,
// or abandons the session without leaving any partial state.
package erase

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
)

// DefaultSize is the default side length of the square eraser
// footprint, in page units.
const DefaultSize = 20.0

// Mode selects how the eraser treats annotations it touches.
type Mode int

const (
	// Whole removes every touched annotation completely.
	Whole Mode = iota

	// Partial trims path-bearing annotations and removes only the
	// path geometry under the eraser.  Annotations without path
	// geometry are removed completely, as in Whole mode.
	Partial
)

// ModeFor returns the erase mode conventionally used for annotations
// of the given tool: Partial for freehand strokes, Whole for
// everything else.
func ModeFor(t markup.Tool) Mode {
	switch t {
	case markup.ToolPen, markup.ToolHighlighter:
		return Partial
	default:
		return Whole
	}
}

// Result is the outcome of one erase gesture.
type Result struct {
	// Erased lists the identities of annotations to be removed
	// completely, in deterministic order.
	Erased []uuid.UUID

	// Modified lists working copies of partially trimmed annotations.
	// Each copy shares the identity of the live annotation it was
	// taken from and carries the surviving path geometry.
	Modified []*markup.Annotation
}

// Session is the state of one erase gesture.
//
// The zero value is not usable; use [NewSession].  A session may be
// reused for several gestures, [Begin] resets all per-gesture state.
type Session struct {
	mode Mode
	size float64

	// OnErase, if non-nil, is called once per gesture for each
	// annotation the eraser removes completely, for live visual
	// feedback.
	OnErase func(*markup.Annotation)

	// OnModify, if non-nil, is called once per gesture for each
	// annotation the eraser trims, with the working copy.
	OnModify func(*markup.Annotation)

	active   bool
	erased   map[uuid.UUID]*markup.Annotation
	modified map[uuid.UUID]*markup.Annotation
}

// NewSession returns a new erase session.  A size of zero or less
// selects [DefaultSize].
func NewSession(mode Mode, size float64) *Session {
	if size <= 0 {
		size = DefaultSize
	}
	return &Session{
		mode: mode,
		size: size,
	}
}

// Begin starts a new gesture at the given page-space point.  The
// candidates are the annotations of the touched page; annotations on
// other pages are skipped.
func (s *Session) Begin(p vec.Vec2, pageIndex int, candidates []*markup.Annotation) {
	s.active = true
	s.erased = make(map[uuid.UUID]*markup.Annotation)
	s.modified = make(map[uuid.UUID]*markup.Annotation)
	s.sample(p, pageIndex, candidates)
}

// Continue extends the current gesture with another sample point.
// Calling Continue without an active gesture is a no-op.
func (s *Session) Continue(p vec.Vec2, pageIndex int, candidates []*markup.Annotation) {
	if !s.active {
		return
	}
	s.sample(p, pageIndex, candidates)
}

// End finishes the gesture and returns the accumulated result.  The
// per-gesture state is cleared.
func (s *Session) End() Result {
	res := Result{}
	if !s.active {
		return res
	}

	ids := maps.Keys(s.erased)
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	res.Erased = ids

	mod := maps.Values(s.modified)
	sort.Slice(mod, func(i, j int) bool {
		return mod[i].ID.String() < mod[j].ID.String()
	})
	res.Modified = mod

	s.Cancel()
	return res
}

// Cancel abandons the current gesture without producing a result.
func (s *Session) Cancel() {
	s.active = false
	s.erased = nil
	s.modified = nil
}

// footprint returns the square eraser footprint around p.
func (s *Session) footprint(p vec.Vec2) rect.Rect {
	h := s.size / 2
	return rect.Rect{
		LLx: p.X - h, LLy: p.Y - h,
		URx: p.X + h, URy: p.Y + h,
	}
}

// sample processes one eraser position.
func (s *Session) sample(p vec.Vec2, pageIndex int, candidates []*markup.Annotation) {
	box := s.footprint(p)
	for _, a := range candidates {
		if a.PageIndex != pageIndex || !a.IsValid() {
			continue
		}
		if _, done := s.erased[a.ID]; done {
			continue
		}

		if s.mode == Partial && a.Tool.UsesPaths() && len(a.Properties.Paths) > 0 {
			s.trim(p, a)
			continue
		}

		if intersects(a.Frame, box) || a.Contains(p) {
			s.erase(a)
		}
	}
}

// trim splits the annotation's path geometry against the circular
// erase region inscribed in the footprint.  The live annotation is not
// touched; trimming operates on a per-gesture working copy.
func (s *Session) trim(p vec.Vec2, a *markup.Annotation) {
	target := s.modified[a.ID]
	if target == nil {
		target = workingCopy(a)
	}

	// erase region centre in the annotation's local path coordinates
	local := vec.Vec2{
		X: p.X - target.Frame.LLx,
		Y: p.Y - target.Frame.LLy,
	}

	radius := s.size / 2
	touched := false
	remaining := make([]markup.Path, 0, len(target.Properties.Paths))
	for _, path := range target.Properties.Paths {
		if !pathTouched(path, local, radius) {
			remaining = append(remaining, path)
			continue
		}
		touched = true
		remaining = append(remaining, SplitPath(path, local, radius)...)
	}
	if !touched {
		return
	}
	target.Properties.Paths = remaining

	if len(remaining) == 0 {
		// nothing left of the annotation
		delete(s.modified, a.ID)
		s.erase(a)
		return
	}

	first := s.modified[a.ID] == nil
	s.modified[a.ID] = target
	if first && s.OnModify != nil {
		s.OnModify(target)
	}
}

func (s *Session) erase(a *markup.Annotation) {
	s.erased[a.ID] = a
	if s.OnErase != nil {
		s.OnErase(a)
	}
}

// workingCopy clones the annotation, keeping its identity.
func workingCopy(a *markup.Annotation) *markup.Annotation {
	clone := *a
	clone.Properties = a.Properties.Clone()
	return &clone
}

func intersects(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx &&
		a.LLy <= b.URy && b.LLy <= a.URy
}
