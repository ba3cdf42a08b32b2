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

// Package color implements PCL colour palettes.
//
// PCL selects colours by palette index.  A palette is either one of the
// fixed palettes created by [Palette.SetMode], or a programmable palette
// created by [Palette.Configure] whose entries can be changed using
// [Palette.SetColor].
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/hpgl"
)

// Color is an RGB colour.  The components range from 0 to 1.
type Color struct {
	R, G, B float64
}

// Gray returns a shade of gray.  0 is black and 1 is white.
func Gray(g float64) Color {
	return Color{g, g, g}
}

// Some predefined colours.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Parse converts a colour in hexadecimal notation, "#rrggbb" or "#rgb",
// to a Color.
func Parse(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	var scale float64
	switch len(hex) {
	case 3:
		scale = 15
	case 6:
		scale = 255
	default:
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}

	n := len(hex) / 3
	var v [3]float64
	for i := range v {
		x, err := strconv.ParseUint(hex[i*n:(i+1)*n], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid colour %q", s)
		}
		v[i] = float64(x) / scale
	}
	return Color{v[0], v[1], v[2]}, nil
}

// Bytes returns the colour components scaled to the range 0 to 255.
func (c Color) Bytes() (r, g, b int) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(x float64) int {
	return int(math.Round(255 * min(max(x, 0), 1)))
}

// Mode selects one of the fixed palettes.
type Mode int

// The fixed palettes.
const (
	Monochrome Mode = 1  // black and white
	RGB        Mode = 3  // eight colours, additive
	CMY        Mode = -3 // eight colours, subtractive
)

var (
	// ErrFixedPalette is set when the entries of a fixed palette are
	// changed.
	ErrFixedPalette = errors.New("palette is not programmable")

	// ErrIndex is set when a palette index is out of range.
	ErrIndex = errors.New("palette index out of range")
)

// Palette manages the active PCL palette.
//
// Errors are sticky: once an operation fails, Err is set and all further
// operations are ignored.
type Palette struct {
	Err error

	out          pcl.Emitter
	size         int
	programmable bool
}

// New allocates a new Palette.  Initially, the printer's monochrome
// palette is assumed.
func New(out pcl.Emitter) *Palette {
	return &Palette{
		out:  out,
		size: 2,
	}
}

// Size returns the number of entries of the active palette.
func (p *Palette) Size() int {
	return p.size
}

// SetMode selects one of the fixed palettes.
func (p *Palette) SetMode(m Mode) {
	if p.Err != nil {
		return
	}
	p.out.WritePCL(pcl.Cmd("*r", int(m), 'U'))
	p.programmable = false
	if m == Monochrome {
		p.size = 2
	} else {
		p.size = 8
	}
}

// Configure creates a programmable RGB palette with 2^bits entries.
// The number of bits must be between 1 and 8.
func (p *Palette) Configure(bits int) {
	if p.Err != nil {
		return
	}
	if bits < 1 || bits > 8 {
		p.Err = fmt.Errorf("Configure: %d bits per index: %w", bits, ErrIndex)
		return
	}

	// short form: colour space, pixel encoding mode, bits per index,
	// and bits per primary
	data := []byte{0, 1, byte(bits), 8, 8, 8}
	p.out.WritePCL(pcl.Cmd("*v", len(data), 'W'))
	p.out.WriteBinary(data)
	p.programmable = true
	p.size = 1 << bits
}

// SetColor changes the palette entry with the given index.
// This requires a palette created by [Palette.Configure].
func (p *Palette) SetColor(index int, c Color) {
	if !p.valid("SetColor", index) {
		return
	}
	if !p.programmable {
		p.Err = fmt.Errorf("SetColor: %w", ErrFixedPalette)
		return
	}
	r, g, b := c.Bytes()
	p.out.WritePCL(pcl.Cmd("*v", r, 'A'))
	p.out.WritePCL(pcl.Cmd("*v", g, 'B'))
	p.out.WritePCL(pcl.Cmd("*v", b, 'C'))
	p.out.WritePCL(pcl.Cmd("*v", index, 'I'))
}

// Select makes the palette entry with the given index the foreground
// colour for text and rules.
func (p *Palette) Select(index int) {
	if !p.valid("Select", index) {
		return
	}
	p.out.WritePCL(pcl.Cmd("*v", index, 'S'))
}

func (p *Palette) valid(op string, index int) bool {
	if p.Err != nil {
		return false
	}
	if index < 0 || index >= p.size {
		p.Err = fmt.Errorf("%s: index %d: %w", op, index, ErrIndex)
		return false
	}
	return true
}

// PenColor assigns a colour to an HP-GL/2 pen.
func PenColor(plotter *hpgl.Plotter, pen int, c Color) {
	r, g, b := c.Bytes()
	plotter.SetPenColor(pen, r, g, b)
}
