// seehuhn.de/go/pcl - a library for writing PCL printer data streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package pcl

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Emitter is implemented by everything content can be written to.
//
// Content producers must route all of their output through these four
// methods.  Writing to the underlying [Sink] directly breaks the mode
// tracking and command merging of [Writer].
type Emitter interface {
	// WritePCL writes a single, well-formed PCL escape sequence.
	WritePCL(cmd string)

	// WriteText writes literal text.
	WriteText(data []byte)

	// WriteBinary writes raw bytes.
	WriteBinary(data []byte)

	// WriteHPGL writes a fragment of HP-GL/2 code.
	WriteHPGL(data string)
}

// State is the drawing state shared between a document and the content
// producers which draw on it.
//
// The state is reset whenever a new page is added.  Producers must not
// assume that the values survive a page switch.
type State struct {
	// X and Y give the current cursor position in PostScript points,
	// measured from the top-left corner of the logical page.
	X, Y float64

	// LastMove is the point of the most recent move operation.
	LastMove vec.Vec2

	// CTM is the current transformation matrix.  It maps user space
	// coordinates to page coordinates.
	CTM matrix.Matrix
}

// Reset moves the cursor to (x, y) and clears the remaining state.
func (s *State) Reset(x, y float64) {
	s.X = x
	s.Y = y
	s.LastMove = vec.Vec2{}
	s.CTM = matrix.Identity
}

// Apply maps the user space point (x, y) to page coordinates.
func (s *State) Apply(x, y float64) (float64, float64) {
	M := s.CTM
	return M[0]*x + M[2]*y + M[4], M[1]*x + M[3]*y + M[5]
}
