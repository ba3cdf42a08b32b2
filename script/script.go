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

// Package script implements a small line-oriented language for describing
// PCL documents.
//
// Every line contains one command.  Coordinates and lengths are given in
// PostScript points, relative to the top-left corner of the page.
//
//	page [<paper>] [portrait|landscape] [copies <n>]
//	font <typeface> <size> [bold] [italic]
//	text <x> <y> "<string>"
//	pen <n> [<width in mm>]
//	pencolor <n> <#rrggbb>
//	line <x1> <y1> <x2> <y2>
//	rect <x> <y> <w> <h> [fill]
//	circle <x> <y> <r> [fill]
//	path "<svg path data>" [fill]
//	color <index> <#rrggbb>
//	switch <page number>
//	flush
//
// Comments start with "//" and extend to the end of the line.
package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Script is a parsed script.
type Script struct {
	Commands []*Command `parser:"( @@? Newline )* @@?"`
}

// Command is a single line of a script.  Exactly one of the fields is set.
type Command struct {
	Pos lexer.Position `parser:""`

	Page     *PageCmd     `parser:"  @@"`
	Font     *FontCmd     `parser:"| @@"`
	Text     *TextCmd     `parser:"| @@"`
	Pen      *PenCmd      `parser:"| @@"`
	PenColor *PenColorCmd `parser:"| @@"`
	Line     *LineCmd     `parser:"| @@"`
	Rect     *RectCmd     `parser:"| @@"`
	Circle   *CircleCmd   `parser:"| @@"`
	Path     *PathCmd     `parser:"| @@"`
	Color    *ColorCmd    `parser:"| @@"`
	Switch   *SwitchCmd   `parser:"| @@"`
	Flush    bool         `parser:"| @'flush'"`
}

// PageCmd starts a new page.
type PageCmd struct {
	Options []*PageOption `parser:"'page' @@*"`
}

// PageOption is a paper name, an orientation, or a number of copies.
type PageOption struct {
	Copies *int   `parser:"  'copies' @Number"`
	Name   string `parser:"| @Ident"`
}

// FontCmd selects a printer-resident font.
type FontCmd struct {
	Typeface string   `parser:"'font' @Ident"`
	Size     float64  `parser:"@Number"`
	Styles   []string `parser:"@( 'bold' | 'italic' )*"`
}

// TextCmd prints a string.  Line breaks in the string start new lines.
type TextCmd struct {
	X    float64       `parser:"'text' @Number"`
	Y    float64       `parser:"@Number"`
	Text StringLiteral `parser:"@String"`
}

// PenCmd selects an HP-GL/2 pen.
type PenCmd struct {
	Pen   int      `parser:"'pen' @Number"`
	Width *float64 `parser:"@Number?"`
}

// PenColorCmd assigns a colour to an HP-GL/2 pen.
type PenColorCmd struct {
	Pen   int    `parser:"'pencolor' @Number"`
	Color string `parser:"@Color"`
}

// LineCmd draws a straight line.
type LineCmd struct {
	X1 float64 `parser:"'line' @Number"`
	Y1 float64 `parser:"@Number"`
	X2 float64 `parser:"@Number"`
	Y2 float64 `parser:"@Number"`
}

// RectCmd draws a rectangle.
type RectCmd struct {
	X    float64 `parser:"'rect' @Number"`
	Y    float64 `parser:"@Number"`
	W    float64 `parser:"@Number"`
	H    float64 `parser:"@Number"`
	Fill bool    `parser:"@'fill'?"`
}

// CircleCmd draws a circle.
type CircleCmd struct {
	X    float64 `parser:"'circle' @Number"`
	Y    float64 `parser:"@Number"`
	R    float64 `parser:"@Number"`
	Fill bool    `parser:"@'fill'?"`
}

// PathCmd draws a path given in SVG path syntax.
type PathCmd struct {
	Data StringLiteral `parser:"'path' @String"`
	Fill bool          `parser:"@'fill'?"`
}

// ColorCmd sets a palette entry and makes it the foreground colour.
type ColorCmd struct {
	Index int    `parser:"'color' @Number"`
	Color string `parser:"@Color"`
}

// SwitchCmd makes a buffered page the current page.
type SwitchCmd struct {
	Page int `parser:"'switch' @Number"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse reads a script from r.  The name is used in error messages.
func Parse(name string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(name, r)
}

// ParseString parses a script given as a string.
func ParseString(input string) (*Script, error) {
	return scriptParser.ParseString("", input)
}
