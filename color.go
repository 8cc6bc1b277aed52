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

// Color is a device RGB colour with an alpha component.  All components
// are in the range [0, 1].  The zero value is fully transparent and is
// used to mean "not set".
type Color struct {
	R, G, B, A float64
}

// Predefined colours.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// RGB returns an opaque colour with the given components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// IsSet reports whether c is different from the transparent zero value.
func (c Color) IsSet() bool {
	return c != Transparent
}
