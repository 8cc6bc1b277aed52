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

// Package markup provides the data model for user-drawn document markup:
// pen and highlighter strokes, geometric shapes, text boxes, signatures
// and notes placed on the pages of a paginated document.
//
// An [Annotation] lives in page coordinates (origin at the page's
// bottom-left corner, y increasing upwards) and is described by its
// [Tool], its frame rectangle, and a [Properties] bundle.  Freehand and
// polygon geometry is stored as [Path] values relative to the frame's
// lower-left corner, so that moving an annotation never rewrites its
// path data.
//
// The model knows nothing about rendering back-ends.  Drawing is
// expressed as a sequence of primitive operations emitted to the
// [Canvas] interface; a rendering collaborator implements Canvas on top
// of whatever graphics system it uses.
//
// The sub-packages build on this model:
//
//   - [seehuhn.de/go/markup/coord] converts between page coordinates
//     and display coordinates under zoom, scroll and rotation.
//   - [seehuhn.de/go/markup/shape] classifies freehand point sequences
//     into idealised shapes.
//   - [seehuhn.de/go/markup/erase] removes or trims annotations under a
//     moving eraser footprint.
//   - [seehuhn.de/go/markup/editor] owns the live annotation collection
//     and the undo/redo command log.
package markup
