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

// Package editor owns the live annotation collection of an open
// document.
//
// The [Editor] is the single writer of the collection: every mutation
// goes through its methods, records an inverse command for undo/redo,
// and marks the document dirty.  Rendering collaborators read the
// collection through accessor methods; they must do so on the same
// logical thread as the mutations, or work from copies.
//
// Undo and redo follow the standard linear-history rule: any mutating
// call other than Undo and Redo clears the redo stack.
package editor

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
	"seehuhn.de/go/markup/erase"
	"seehuhn.de/go/markup/shape"
)

// DefaultHistoryLimit is the default depth of the undo and redo
// stacks.  When the limit is exceeded, the oldest entries are silently
// dropped.
const DefaultHistoryLimit = 50

// Errors returned by the editor.
var (
	ErrInvalidGeometry = errors.New("invalid annotation geometry")
	ErrDuplicate       = errors.New("annotation already in collection")
	ErrNotFound        = errors.New("annotation not found")
)

// Editor owns the annotations of one open document, the selection
// state, and the undo/redo history.
type Editor struct {
	annotations []*markup.Annotation
	byID        map[uuid.UUID]*markup.Annotation

	selected uuid.UUID // uuid.Nil if nothing is selected

	undo  []command
	redo  []command
	limit int

	dirty bool
	nextZ int

	eraser *erase.Session

	log *zap.Logger
}

// Option configures an [Editor].
type Option func(*Editor)

// WithLogger sets the logger used for non-fatal anomalies.  The
// default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithHistoryLimit sets the depth of the undo and redo stacks.  Values
// of zero or less select [DefaultHistoryLimit].
func WithHistoryLimit(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.limit = n
		}
	}
}

// New returns an empty editor.
func New(opts ...Option) *Editor {
	e := &Editor{
		byID:  make(map[uuid.UUID]*markup.Annotation),
		limit: DefaultHistoryLimit,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Count returns the number of live annotations.
func (e *Editor) Count() int {
	return len(e.annotations)
}

// Dirty reports whether the collection has been modified since the
// last [Editor.ApplyToDocument].
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Annotation returns the live annotation with the given identity, or
// nil.  Callers must not mutate the result; use the editor's mutation
// methods instead.
func (e *Editor) Annotation(id uuid.UUID) *markup.Annotation {
	return e.byID[id]
}

// Annotations returns the live annotations in insertion order.  The
// returned slice is a copy, the annotations are not; callers must not
// mutate them.
func (e *Editor) Annotations() []*markup.Annotation {
	out := make([]*markup.Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// PageAnnotations returns the annotations of one page in paint order,
// i.e. sorted by z-index.
func (e *Editor) PageAnnotations(pageIndex int) []*markup.Annotation {
	var out []*markup.Annotation
	for _, a := range e.annotations {
		if a.PageIndex == pageIndex {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// Add appends an annotation to the collection and records the
// addition in the history.
func (e *Editor) Add(a *markup.Annotation) error {
	if a == nil || !a.Tool.Valid() || !a.IsValid() {
		return ErrInvalidGeometry
	}
	if e.byID[a.ID] != nil {
		return ErrDuplicate
	}

	a.ZIndex = e.nextZ
	e.nextZ++
	e.insert(a)

	e.push(command{
		kind:       cmdAdd,
		id:         a.ID,
		annotation: cloneKeepID(a),
	})
	return nil
}

// Delete removes the annotation with the given identity.  Deleting an
// unknown identity is a no-op and returns false.
func (e *Editor) Delete(id uuid.UUID) bool {
	a := e.byID[id]
	if a == nil {
		return false
	}
	if e.selected == id {
		e.Select(uuid.Nil)
	}
	e.remove(id)

	e.push(command{
		kind:       cmdDelete,
		id:         id,
		annotation: cloneKeepID(a),
	})
	return true
}

// Move moves the annotation's frame origin (its lower-left corner) to
// the given page-space point.  Moving an unknown identity is a no-op
// and returns false.
func (e *Editor) Move(id uuid.UUID, to vec.Vec2) bool {
	a := e.byID[id]
	if a == nil {
		return false
	}
	from := vec.Vec2{X: a.Frame.LLx, Y: a.Frame.LLy}
	setOrigin(a, to)
	a.ModifiedAt = time.Now()

	e.push(command{
		kind: cmdMove,
		id:   id,
		from: from,
		to:   to,
	})
	return true
}

// RecordModification records a mutation which the caller has already
// applied to the live annotation.  prior must be a snapshot taken
// before the mutation; the annotation's current state becomes the redo
// target.
func (e *Editor) RecordModification(id uuid.UUID, prior markup.Snapshot) bool {
	a := e.byID[id]
	if a == nil {
		e.log.Debug("modification target missing",
			zap.String("id", id.String()))
		return false
	}
	e.push(command{
		kind:   cmdModify,
		id:     id,
		before: prior,
		after:  a.TakeSnapshot(),
	})
	return true
}

// SetProperties replaces the annotation's properties, recording the
// change in the history.
func (e *Editor) SetProperties(id uuid.UUID, props markup.Properties) error {
	a := e.byID[id]
	if a == nil {
		return ErrNotFound
	}
	prior := a.TakeSnapshot()
	a.Properties = props.Clone()
	a.ModifiedAt = time.Now()
	e.RecordModification(id, prior)
	return nil
}

// Duplicate inserts a copy of the annotation, offset by d, and returns
// the copy.
func (e *Editor) Duplicate(id uuid.UUID, d vec.Vec2) (*markup.Annotation, error) {
	a := e.byID[id]
	if a == nil {
		return nil, ErrNotFound
	}
	dup := a.Copy()
	dup.Frame.LLx += d.X
	dup.Frame.LLy += d.Y
	dup.Frame.URx += d.X
	dup.Frame.URy += d.Y
	if err := e.Add(dup); err != nil {
		return nil, err
	}
	return dup, nil
}

// BringToFront raises the annotation above all others, recording the
// change in the history.
func (e *Editor) BringToFront(id uuid.UUID) bool {
	a := e.byID[id]
	if a == nil {
		return false
	}
	prior := a.TakeSnapshot()
	a.ZIndex = e.nextZ
	e.nextZ++
	a.ModifiedAt = time.Now()
	return e.RecordModification(id, prior)
}

// SendToBack lowers the annotation below all others, recording the
// change in the history.
func (e *Editor) SendToBack(id uuid.UUID) bool {
	a := e.byID[id]
	if a == nil {
		return false
	}
	minZ := 0
	for _, other := range e.annotations {
		if other.ZIndex < minZ {
			minZ = other.ZIndex
		}
	}
	prior := a.TakeSnapshot()
	a.ZIndex = minZ - 1
	a.ModifiedAt = time.Now()
	return e.RecordModification(id, prior)
}

// Select marks the annotation with the given identity as selected.  At
// most one annotation is selected at a time; selecting clears any
// previous selection.  Selecting uuid.Nil clears the selection.
func (e *Editor) Select(id uuid.UUID) {
	if prev := e.byID[e.selected]; prev != nil {
		prev.Selected = false
	}
	e.selected = uuid.Nil
	if a := e.byID[id]; a != nil {
		a.Selected = true
		e.selected = id
	}
}

// Selected returns the currently selected annotation, or nil.
func (e *Editor) Selected() *markup.Annotation {
	return e.byID[e.selected]
}

// CanUndo reports whether there is a command to undo.
func (e *Editor) CanUndo() bool {
	return len(e.undo) > 0
}

// CanRedo reports whether there is a command to redo.
func (e *Editor) CanRedo() bool {
	return len(e.redo) > 0
}

// Undo reverts the most recent mutation.  It returns false if the
// undo stack is empty.
func (e *Editor) Undo() bool {
	n := len(e.undo)
	if n == 0 {
		return false
	}
	c := e.undo[n-1]
	e.undo = e.undo[:n-1]

	c.invert().apply(e)

	e.redo = append(e.redo, c)
	if len(e.redo) > e.limit {
		copy(e.redo, e.redo[1:])
		e.redo = e.redo[:len(e.redo)-1]
	}
	e.dirty = true
	return true
}

// Redo replays the most recently undone mutation.  It returns false if
// the redo stack is empty.
func (e *Editor) Redo() bool {
	n := len(e.redo)
	if n == 0 {
		return false
	}
	c := e.redo[n-1]
	e.redo = e.redo[:n-1]

	c.apply(e)

	e.undo = append(e.undo, c)
	if len(e.undo) > e.limit {
		copy(e.undo, e.undo[1:])
		e.undo = e.undo[:len(e.undo)-1]
	}
	e.dirty = true
	return true
}

// FinishStroke completes a freehand drawing gesture.  The points are
// the sampled stroke in page coordinates.
//
// With recognize set, the stroke is first run through the shape
// recognizer and, on a match, committed as the idealised shape;
// otherwise (and for unrecognised scribbles) it is committed as a raw
// stroke of the given tool.  The committed annotation is returned.
func (e *Editor) FinishStroke(tool markup.Tool, points []vec.Vec2, pageIndex int, props markup.Properties, recognize bool) (*markup.Annotation, error) {
	if len(points) < 2 {
		return nil, ErrInvalidGeometry
	}

	var a *markup.Annotation
	if recognize {
		if s := shape.Recognize(points, shape.DefaultConfig()); s != nil {
			a = s.ToAnnotation(pageIndex)
		}
	}
	if a == nil {
		paths := []markup.Path{markup.Polyline(points, false)}
		a = markup.NewStroke(tool, paths, pageIndex, props)
	}

	if err := e.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// BeginErase starts an erase gesture at the given page-space point.  A
// size of zero or less selects [erase.DefaultSize].  Any erase gesture
// still in progress is abandoned.
func (e *Editor) BeginErase(mode erase.Mode, size float64, p vec.Vec2, pageIndex int) {
	e.eraser = erase.NewSession(mode, size)
	e.eraser.Begin(p, pageIndex, e.annotations)
}

// EraseAt extends the current erase gesture.  Without an active
// gesture this is a no-op.
func (e *Editor) EraseAt(p vec.Vec2, pageIndex int) {
	if e.eraser == nil {
		return
	}
	e.eraser.Continue(p, pageIndex, e.annotations)
}

// EndErase finishes the erase gesture and commits its result through
// the command log: one delete per fully erased annotation, one
// modification per trimmed annotation.  It returns the number of
// annotations affected.
func (e *Editor) EndErase() int {
	if e.eraser == nil {
		return 0
	}
	res := e.eraser.End()
	e.eraser = nil

	n := 0
	for _, id := range res.Erased {
		if e.Delete(id) {
			n++
		}
	}
	for _, work := range res.Modified {
		live := e.byID[work.ID]
		if live == nil {
			e.log.Debug("trimmed annotation vanished",
				zap.String("id", work.ID.String()))
			continue
		}
		prior := live.TakeSnapshot()
		live.Properties.Paths = work.Properties.Paths
		live.ModifiedAt = time.Now()
		e.RecordModification(live.ID, prior)
		n++
	}
	return n
}

// CancelErase abandons the current erase gesture, leaving the
// collection untouched.
func (e *Editor) CancelErase() {
	if e.eraser != nil {
		e.eraser.Cancel()
		e.eraser = nil
	}
}

// Sink receives annotations during [Editor.ApplyToDocument].  A sink
// materialises each annotation into the external document
// representation, replacing any prior materialisation of the same
// identity.
type Sink interface {
	Materialize(a *markup.Annotation) error
}

// ApplyToDocument materialises every live annotation into the external
// document through the sink, in page and paint order.  On success both
// history stacks are cleared and the dirty flag is reset: history is a
// pre-materialisation concept, flattened annotations can no longer be
// revised through this editor.
func (e *Editor) ApplyToDocument(sink Sink) error {
	ordered := make([]*markup.Annotation, len(e.annotations))
	copy(ordered, e.annotations)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PageIndex != ordered[j].PageIndex {
			return ordered[i].PageIndex < ordered[j].PageIndex
		}
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	for _, a := range ordered {
		if err := sink.Materialize(a); err != nil {
			return err
		}
	}

	e.undo = e.undo[:0]
	e.redo = e.redo[:0]
	e.dirty = false
	return nil
}

// push records a command on the undo stack.  Like every mutation other
// than Undo/Redo it clears the redo stack and marks the document
// dirty.
func (e *Editor) push(c command) {
	e.undo = append(e.undo, c)
	if len(e.undo) > e.limit {
		// silently drop the oldest entry
		copy(e.undo, e.undo[1:])
		e.undo = e.undo[:len(e.undo)-1]
	}
	e.redo = e.redo[:0]
	e.dirty = true
}

// insert adds the annotation to the collection without recording
// history.
func (e *Editor) insert(a *markup.Annotation) {
	e.annotations = append(e.annotations, a)
	e.byID[a.ID] = a
	if a.ZIndex >= e.nextZ {
		e.nextZ = a.ZIndex + 1
	}
}

// remove deletes the annotation from the collection without recording
// history.
func (e *Editor) remove(id uuid.UUID) bool {
	a := e.byID[id]
	if a == nil {
		return false
	}
	delete(e.byID, id)
	for i, b := range e.annotations {
		if b == a {
			e.annotations = append(e.annotations[:i], e.annotations[i+1:]...)
			break
		}
	}
	if e.selected == id {
		e.selected = uuid.Nil
	}
	return true
}
