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

package editor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/markup"
)

// commandKind enumerates the recorded mutation types.
type commandKind int

const (
	cmdAdd commandKind = iota
	cmdDelete
	cmdMove
	cmdModify
)

func (k commandKind) String() string {
	switch k {
	case cmdAdd:
		return "add"
	case cmdDelete:
		return "delete"
	case cmdMove:
		return "move"
	case cmdModify:
		return "modify"
	default:
		return "unknown"
	}
}

// command is one recorded, invertible mutation of the annotation
// collection.  Commands are value types: they hold deep copies and
// snapshots, never references into the live collection, so they stay
// valid however the collection changes after recording.
type command struct {
	kind commandKind
	id   uuid.UUID

	// annotation is a deep copy (with preserved identity) used to
	// re-insert the target when an add is replayed or a delete is
	// undone.
	annotation *markup.Annotation

	// from and to are the frame origins of a move command.
	from, to vec.Vec2

	// before and after are the snapshots of a modify command.
	before, after markup.Snapshot
}

// invert returns the command undoing c.
func (c command) invert() command {
	switch c.kind {
	case cmdAdd:
		c.kind = cmdDelete
	case cmdDelete:
		c.kind = cmdAdd
	case cmdMove:
		c.from, c.to = c.to, c.from
	case cmdModify:
		c.before, c.after = c.after, c.before
	}
	return c
}

// apply executes the command's forward effect against the live
// collection.  A missing target is logged and skipped; stale handles
// are not an error (the target may have been removed by a later
// command which has itself been undone out of order).
func (c command) apply(e *Editor) {
	switch c.kind {
	case cmdAdd:
		if c.annotation == nil {
			return
		}
		e.insert(cloneKeepID(c.annotation))

	case cmdDelete:
		if !e.remove(c.id) {
			e.log.Debug("delete target missing",
				zap.String("id", c.id.String()))
		}

	case cmdMove:
		a := e.byID[c.id]
		if a == nil {
			e.log.Debug("move target missing",
				zap.String("id", c.id.String()))
			return
		}
		setOrigin(a, c.to)

	case cmdModify:
		a := e.byID[c.id]
		if a == nil {
			e.log.Debug("modify target missing",
				zap.String("id", c.id.String()))
			return
		}
		a.Restore(c.after)
	}
}

// cloneKeepID returns a deep copy of the annotation which keeps the
// original identity, unlike [markup.Annotation.Copy].
func cloneKeepID(a *markup.Annotation) *markup.Annotation {
	clone := *a
	clone.Properties = a.Properties.Clone()
	clone.Selected = false
	clone.Editing = false
	clone.Dragging = false
	return &clone
}

// setOrigin moves the annotation frame so that its lower-left corner
// is at p, preserving the size.
func setOrigin(a *markup.Annotation, p vec.Vec2) {
	w := a.Frame.URx - a.Frame.LLx
	h := a.Frame.URy - a.Frame.LLy
	a.Frame.LLx = p.X
	a.Frame.LLy = p.Y
	a.Frame.URx = p.X + w
	a.Frame.URy = p.Y + h
}
