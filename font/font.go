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

// Package font implements selection of printer-resident PCL fonts.
//
// Fonts are selected by their characteristics (symbol set, spacing, pitch,
// height, style, stroke weight and typeface family).  The printer picks the
// closest match among its resident fonts.  Font downloading is not
// supported.
package font

import (
	"seehuhn.de/go/pcl"
)

// Typeface is a PCL typeface family number.
type Typeface int

// Typeface family numbers of common printer-resident fonts.
const (
	LinePrinter   Typeface = 0
	Courier       Typeface = 4099
	CGTimes       Typeface = 4101
	Univers       Typeface = 4148
	Arial         Typeface = 16602
	TimesNewRoman Typeface = 16901
)

var typefaceNames = map[string]Typeface{
	"lineprinter":   LinePrinter,
	"courier":       Courier,
	"cgtimes":       CGTimes,
	"univers":       Univers,
	"arial":         Arial,
	"timesnewroman": TimesNewRoman,
}

// TypefaceByName returns the typeface with the given name.
// Names are lower case without spaces, for example "timesnewroman".
func TypefaceByName(name string) (Typeface, bool) {
	tf, ok := typefaceNames[name]
	return tf, ok
}

// Stroke weights.
const (
	Light  = -3
	Medium = 0
	Bold   = 3
)

// Font describes a printer-resident font.
type Font struct {
	SymbolSet *SymbolSet

	// Proportional selects proportional spacing.  If this is false, the
	// font has fixed spacing and Pitch is used.
	Proportional bool

	// Pitch is the number of characters per inch, for fixed spacing fonts.
	Pitch float64

	// Height is the font size in points.
	Height float64

	Italic bool

	// Weight is the stroke weight, from -7 (ultra thin) to 7 (ultra black).
	Weight int

	Typeface Typeface
}

// New returns a font of the given typeface and size, using the Windows
// 1252 symbol set.  Courier and LinePrinter use fixed spacing, all other
// typefaces are proportional.
func New(tf Typeface, size float64) *Font {
	f := &Font{
		SymbolSet:    Windows1252,
		Proportional: true,
		Height:       size,
		Typeface:     tf,
	}
	if tf == Courier || tf == LinePrinter {
		f.Proportional = false
		f.Pitch = 120 / size
	}
	return f
}

// Select makes f the primary font.
//
// The symbol set is selected first.  The remaining characteristics all
// belong to the same command group and are combined into a single command
// by [pcl.Writer].
func (f *Font) Select(out pcl.Emitter) {
	ss := f.SymbolSet
	if ss == nil {
		ss = Roman8
	}
	out.WritePCL(pcl.Esc + "(" + ss.ID)

	spacing := 0
	if f.Proportional {
		spacing = 1
	}
	out.WritePCL(pcl.Cmd("(s", spacing, 'P'))
	if !f.Proportional {
		out.WritePCL(pcl.CmdFloat("(s", f.Pitch, 'H'))
	}
	out.WritePCL(pcl.CmdFloat("(s", f.Height, 'V'))
	style := 0
	if f.Italic {
		style = 1
	}
	out.WritePCL(pcl.Cmd("(s", style, 'S'))
	out.WritePCL(pcl.Cmd("(s", f.Weight, 'B'))
	out.WritePCL(pcl.Cmd("(s", int(f.Typeface), 'T'))
}

// Encode converts s to character codes of the font's symbol set.
func (f *Font) Encode(s string) ([]byte, error) {
	ss := f.SymbolSet
	if ss == nil {
		ss = Roman8
	}
	return ss.Encode(s)
}

// LineHeight returns the default distance between baselines, in points.
func (f *Font) LineHeight() float64 {
	return 1.2 * f.Height
}

// Advance returns the width of n characters in points, for fixed spacing
// fonts.  For proportional fonts, the second return value is false.
func (f *Font) Advance(n int) (float64, bool) {
	if f.Proportional || f.Pitch <= 0 {
		return 0, false
	}
	return float64(n) * 72 / f.Pitch, true
}
