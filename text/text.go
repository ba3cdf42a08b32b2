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

// Package text writes text to PCL pages.
//
// Text is positioned in PostScript points, relative to the top-left
// corner of the logical page.  Positions are transformed by the current
// transformation matrix of the shared [pcl.State], but the glyphs
// themselves are always drawn upright.
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/font"
)

// ErrNoFont is set when text is shown before a font has been selected.
var ErrNoFont = errors.New("no font selected")

// Writer writes text through a [pcl.Emitter].
//
// Errors are sticky: once an operation fails, Err is set and all further
// operations are ignored.
type Writer struct {
	Err error

	out   pcl.Emitter
	state *pcl.State
	font  *font.Font
}

// New allocates a new Writer.  The cursor position is kept in state,
// which is normally the State of a document.
func New(out pcl.Emitter, state *pcl.State) *Writer {
	return &Writer{
		out:   out,
		state: state,
	}
}

// SetFont selects the font used for subsequent text.
func (w *Writer) SetFont(f *font.Font) {
	if w.Err != nil {
		return
	}
	f.Select(w.out)
	w.font = f
}

// Font returns the current font, or nil if no font has been selected.
func (w *Writer) Font() *font.Font {
	return w.font
}

// MoveTo moves the cursor to (x, y).  The point is also the start of the
// line used by [Writer.Newline].
func (w *Writer) MoveTo(x, y float64) {
	if w.Err != nil {
		return
	}
	w.state.LastMove = vec.Vec2{X: x, Y: y}
	w.state.X, w.state.Y = x, y

	px, py := w.state.Apply(x, y)
	w.out.WritePCL(pcl.CmdFloat("&a", px*10, 'H'))
	w.out.WritePCL(pcl.CmdFloat("&a", py*10, 'V'))
}

// Show prints s at the current cursor position.
//
// The text is converted to the symbol set of the current font.  Control
// characters are sent using the transparent print data command, so that
// they are printed instead of being interpreted by the printer.
func (w *Writer) Show(s string) {
	if !w.valid("Show") {
		return
	}
	data, err := w.font.Encode(s)
	if err != nil {
		w.Err = fmt.Errorf("Show: %w", err)
		return
	}

	for len(data) > 0 {
		n := 0
		for n < len(data) && !isControl(data[n]) {
			n++
		}
		if n > 0 {
			w.out.WriteText(data[:n])
			data = data[n:]
			continue
		}
		for n < len(data) && isControl(data[n]) {
			n++
		}
		w.out.WritePCL(pcl.Cmd("&p", n, 'X'))
		w.out.WriteBinary(data[:n])
		data = data[n:]
	}

	if adv, ok := w.font.Advance(utf8.RuneCountInString(s)); ok {
		w.state.X += adv
	}
}

// Newline moves the cursor to the start of the next line.  The line
// starts below the point given in the most recent call to
// [Writer.MoveTo].
func (w *Writer) Newline() {
	if !w.valid("Newline") {
		return
	}
	w.MoveTo(w.state.LastMove.X, w.state.Y+w.font.LineHeight())
}

// ShowLines prints a multi-line string.  Lines are separated by "\n".
func (w *Writer) ShowLines(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.Newline()
		}
		if line != "" {
			w.Show(line)
		}
	}
}

func (w *Writer) valid(op string) bool {
	if w.Err != nil {
		return false
	}
	if w.font == nil {
		w.Err = fmt.Errorf("%s: %w", op, ErrNoFont)
		return false
	}
	return true
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
