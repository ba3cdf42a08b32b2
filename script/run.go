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

package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"

	"seehuhn.de/go/pcl/color"
	"seehuhn.de/go/pcl/document"
	"seehuhn.de/go/pcl/font"
	"seehuhn.de/go/pcl/hpgl"
	"seehuhn.de/go/pcl/text"
)

// Run executes the script, writing the output to doc.
//
// Drawing commands which occur before the first page command add a page
// with the default page options of the document.  The document is not
// ended by Run.
func (s *Script) Run(doc *document.Document) error {
	r := &runner{
		doc:     doc,
		text:    text.New(doc, &doc.State),
		plot:    hpgl.New(doc, &doc.State),
		palette: color.New(doc),
	}
	for _, cmd := range s.Commands {
		err := r.exec(cmd)
		if err == nil {
			err = r.err()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Pos, err)
		}
	}
	return nil
}

type runner struct {
	doc     *document.Document
	text    *text.Writer
	plot    *hpgl.Plotter
	palette *color.Palette

	font *font.Font

	// These record the page on which the font, picture frame and palette
	// were last set up.  PCL state carries over from page to page in the
	// output stream, but buffered pages may be written in a different
	// order from the one in which they were drawn.
	fontPage    *document.Page
	framePage   *document.Page
	palettePage *document.Page
}

func (r *runner) exec(cmd *Command) error {
	switch {
	case cmd.Page != nil:
		return r.newPage(cmd.Page)

	case cmd.Font != nil:
		tf, ok := font.TypefaceByName(strings.ToLower(cmd.Font.Typeface))
		if !ok {
			return fmt.Errorf("unknown typeface %q", cmd.Font.Typeface)
		}
		f := font.New(tf, cmd.Font.Size)
		for _, style := range cmd.Font.Styles {
			switch style {
			case "bold":
				f.Weight = font.Bold
			case "italic":
				f.Italic = true
			}
		}
		r.font = f
		r.fontPage = nil
		if r.doc.Page() != nil {
			r.setupFont()
		}

	case cmd.Text != nil:
		r.page()
		if r.font == nil {
			return text.ErrNoFont
		}
		r.setupFont()
		r.text.MoveTo(cmd.Text.X, cmd.Text.Y)
		r.text.ShowLines(string(cmd.Text.Text))

	case cmd.Pen != nil:
		r.plot.SelectPen(cmd.Pen.Pen)
		if cmd.Pen.Width != nil {
			r.plot.SetPenWidth(*cmd.Pen.Width)
		}

	case cmd.PenColor != nil:
		c, err := color.Parse(cmd.PenColor.Color)
		if err != nil {
			return err
		}
		r.page()
		color.PenColor(r.plot, cmd.PenColor.Pen, c)

	case cmd.Line != nil:
		r.setupFrame()
		l := cmd.Line
		r.plot.Line(l.X1, l.Y1, l.X2, l.Y2)

	case cmd.Rect != nil:
		r.setupFrame()
		c := cmd.Rect
		r.plot.Rectangle(c.X, c.Y, c.W, c.H)
		r.paint(c.Fill)

	case cmd.Circle != nil:
		r.setupFrame()
		c := cmd.Circle
		r.plot.Circle(c.X, c.Y, c.R)
		r.paint(c.Fill)

	case cmd.Path != nil:
		path, err := canvas.ParseSVGPath(string(cmd.Path.Data))
		if err != nil {
			return err
		}
		r.setupFrame()
		r.plot.AppendPath(path)
		r.paint(cmd.Path.Fill)

	case cmd.Color != nil:
		c, err := color.Parse(cmd.Color.Color)
		if err != nil {
			return err
		}
		r.page()
		if r.palettePage != r.doc.Page() {
			r.palette.Configure(8)
			r.palettePage = r.doc.Page()
		}
		r.palette.SetColor(cmd.Color.Index, c)
		r.palette.Select(cmd.Color.Index)

	case cmd.Switch != nil:
		_, err := r.doc.SwitchToPage(cmd.Switch.Page)
		return err

	case cmd.Flush:
		return r.doc.FlushPages()

	default:
		return errEmptyCommand
	}
	return nil
}

func (r *runner) newPage(cmd *PageCmd) error {
	opt := &document.PageOptions{}
	for _, o := range cmd.Options {
		if o.Copies != nil {
			opt.Copies = *o.Copies
			continue
		}
		switch strings.ToLower(o.Name) {
		case "portrait":
			opt.Orientation = document.Portrait
		case "landscape":
			opt.Orientation = document.Landscape
		default:
			paper, ok := document.PaperByName(o.Name)
			if !ok {
				return fmt.Errorf("unknown page option %q", o.Name)
			}
			opt.Paper = paper
		}
	}
	r.doc.AddPage(opt)
	return nil
}

// page makes sure that there is a current page.
func (r *runner) page() {
	if r.doc.Page() == nil {
		r.doc.AddPage(nil)
	}
}

func (r *runner) setupFont() {
	if r.fontPage == r.doc.Page() {
		return
	}
	r.text.SetFont(r.font)
	r.fontPage = r.doc.Page()
}

func (r *runner) setupFrame() {
	r.page()
	if r.framePage == r.doc.Page() {
		return
	}
	r.plot.SetPictureFrame(r.doc.Page().Size())
	r.framePage = r.doc.Page()
}

func (r *runner) paint(fill bool) {
	if fill {
		r.plot.Fill()
	} else {
		r.plot.Stroke()
	}
}

func (r *runner) err() error {
	return errors.Join(r.text.Err, r.plot.Err, r.palette.Err, r.doc.Err())
}

var errEmptyCommand = errors.New("empty command")
