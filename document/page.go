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

package document

import (
	"seehuhn.de/go/pcl"
)

// PageOptions control the layout of a page.
type PageOptions struct {
	// Paper is the paper size.  If this is nil, A4 is used.
	Paper *Paper

	Orientation Orientation

	// Margins are used to position the cursor when the page is added.
	Margins Margins

	// Copies is the number of copies to print.  Values smaller than 2
	// leave the printer setting unchanged.
	Copies int

	// OnEject, if set, is called once when the page stops being the
	// newest page of the document.
	OnEject func(*Page)

	// OnFinalize, if set, is called after the page contents have been
	// written to the output.  The callback may add new pages to the
	// document.
	OnFinalize func(*Page)
}

// Page is a page of a PCL document.
//
// Content written to a page is held in memory until the page is
// finalized.  Page implements the [pcl.Emitter] interface.
type Page struct {
	PageOptions

	// Err is set if content is written to the page after it has been
	// finalized.
	Err error

	index     int
	doc       *Document
	content   []fragment
	ejected   bool
	finalized bool
}

type fragment struct {
	mode pcl.Mode
	data string
}

var _ pcl.Emitter = (*Page)(nil)

func newPage(doc *Document, index int, opt *PageOptions) *Page {
	p := &Page{
		PageOptions: *opt,
		index:       index,
		doc:         doc,
	}
	if p.Paper == nil {
		p.Paper = A4
	}
	return p
}

// Index returns the absolute page number, starting from 0.
func (p *Page) Index() int {
	return p.index
}

// Size returns the width and height of the logical page in points,
// taking the orientation into account.
func (p *Page) Size() (width, height float64) {
	if p.Orientation == Landscape {
		return p.Paper.Height, p.Paper.Width
	}
	return p.Paper.Width, p.Paper.Height
}

// IsFinalized reports whether the page contents have been written to the
// output.
func (p *Page) IsFinalized() bool {
	return p.finalized
}

// WritePCL appends a PCL command to the page.
func (p *Page) WritePCL(cmd string) {
	p.record(pcl.ModePCL, cmd)
}

// WriteText appends text to the page.
func (p *Page) WriteText(data []byte) {
	p.record(pcl.ModeText, string(data))
}

// WriteBinary appends raw bytes to the page.
func (p *Page) WriteBinary(data []byte) {
	p.record(pcl.ModeBinary, string(data))
}

// WriteHPGL appends HP-GL/2 code to the page.
func (p *Page) WriteHPGL(data string) {
	p.record(pcl.ModeHPGL, data)
}

func (p *Page) record(mode pcl.Mode, data string) {
	if p.Err != nil {
		return
	}
	if p.finalized {
		p.Err = &PageError{Index: p.index, Err: ErrPageClosed}
		p.doc.setErr(p.Err)
		return
	}
	p.content = append(p.content, fragment{mode: mode, data: data})
}

// eject is called when the page stops being the newest page.
func (p *Page) eject() {
	if p.ejected || p.finalized {
		return
	}
	p.ejected = true
	if p.OnEject != nil {
		p.OnEject(p)
	}
}

// finalize writes the page to w and closes the page.
func (p *Page) finalize(w *pcl.Writer) {
	if p.finalized {
		return
	}
	p.eject()

	w.WritePCL(pcl.Cmd("&l", p.Paper.Code, 'A'))
	w.WritePCL(pcl.Cmd("&l", int(p.Orientation), 'O'))
	// Vertical positions are measured from the top margin.
	w.WritePCL(pcl.Cmd("&l", 0, 'E'))
	if p.Copies > 1 {
		w.WritePCL(pcl.Cmd("&l", p.Copies, 'X'))
	}

	for _, f := range p.content {
		switch f.mode {
		case pcl.ModePCL:
			w.WritePCL(f.data)
		case pcl.ModeText:
			w.WriteText([]byte(f.data))
		case pcl.ModeBinary:
			w.WriteBinary([]byte(f.data))
		case pcl.ModeHPGL:
			w.WriteHPGL(f.data)
		}
	}
	w.WritePCL(ejectPage)

	// Disable the page, since it has been written out and cannot be
	// modified anymore.
	p.content = nil
	p.finalized = true

	if p.OnFinalize != nil {
		p.OnFinalize(p)
	}
}

// ejectPage is the PCL command which prints the current page.
const ejectPage = pcl.Esc + "&l0H"
