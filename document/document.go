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

// Package document implements multi-page PCL documents.
//
// A [Document] collects the content of its pages and writes the pages to
// the output stream once they are complete.  By default, each page is
// written as soon as the next page is added, so that at most one page is
// held in memory.  If [Options.BufferPages] is set, all pages are kept
// until [Document.FlushPages] or [Document.End] is called, and
// [Document.SwitchToPage] can be used to go back to an earlier page.
package document

import (
	"io"
	"os"

	"seehuhn.de/go/pcl"
)

// Options control the behaviour of a [Document].
type Options struct {
	// BufferPages keeps all pages in memory until they are flushed
	// explicitly.  If this is false, every page is written to the output
	// as soon as the next page is added.
	BufferPages bool

	// NoAutoFirstPage suppresses the page which is normally added when the
	// document is created.
	NoAutoFirstPage bool

	// Page gives the default options for new pages.
	Page *PageOptions

	// Reset is the command written at the end of the document.
	// If this is empty, the printer reset command ESC E is used.
	Reset string
}

// PageRange describes the pages held in the page buffer.
type PageRange struct {
	// Start is the absolute number of the first buffered page.
	Start int

	// Count is the number of buffered pages.
	Count int
}

// Document is a PCL document consisting of one or more pages.
//
// Content written to the document goes to the current page.  Before the
// first page has been added, content is written directly to the output
// stream; this can be used for job-level settings.
//
// A Document is not safe for concurrent use.
type Document struct {
	// State is the drawing state of the current page.  It is reset
	// whenever a page is added.
	pcl.State

	out     *pcl.Writer
	opt     Options
	pageOpt *PageOptions
	reset   string

	pages           []*Page
	pageBufferStart int
	page            *Page

	pageAdded []func(*Page)

	ended bool
	err   error
}

var _ pcl.Emitter = (*Document)(nil)

// New creates a new document which writes its output to sink.
// If opt is nil, default options are used.
func New(sink pcl.Sink, opt *Options) *Document {
	doc := &Document{
		out:   pcl.NewWriter(sink),
		reset: pcl.Reset,
	}
	if opt != nil {
		doc.opt = *opt
	}
	doc.pageOpt = doc.opt.Page
	if doc.pageOpt == nil {
		doc.pageOpt = &PageOptions{}
	}
	if doc.opt.Reset != "" {
		doc.reset = doc.opt.Reset
	}
	doc.State.Reset(0, 0)

	if !doc.opt.NoAutoFirstPage {
		doc.AddPage(nil)
	}
	return doc
}

// Write creates a new document which writes its output to w.
// If w implements [io.Closer], it is closed by [Document.End].
func Write(w io.Writer, opt *Options) *Document {
	return New(pcl.NewStreamSink(w), opt)
}

// Create creates a new document which is written to the named file.
// If a file with the same name exists, it is overwritten.
func Create(name string, opt *Options) (*Document, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return Write(fd, opt), nil
}

// OnPageAdded registers a callback which is called after every call to
// [Document.AddPage], with the new page as the argument.
func (doc *Document) OnPageAdded(fn func(*Page)) {
	doc.pageAdded = append(doc.pageAdded, fn)
}

// AddPage adds a new page to the document and makes it the current page.
// If opt is nil, the default page options of the document are used.
//
// The previous page is ejected.  Unless page buffering is enabled, all
// buffered pages are written to the output before the new page is
// created.
func (doc *Document) AddPage(opt *PageOptions) *Document {
	if doc.ended {
		doc.setErr(ErrEnded)
		return doc
	}
	if opt == nil {
		opt = doc.pageOpt
	}

	if doc.page != nil {
		doc.page.eject()
	}
	if !doc.opt.BufferPages {
		doc.FlushPages()
	}

	p := newPage(doc, doc.pageBufferStart+len(doc.pages), opt)
	doc.pages = append(doc.pages, p)
	doc.page = p

	doc.State.Reset(p.Margins.Left, p.Margins.Top)

	for _, fn := range doc.pageAdded {
		fn(p)
	}

	return doc
}

// Page returns the current page, or nil if no page has been added yet.
func (doc *Document) Page() *Page {
	return doc.page
}

// BufferedPageRange returns the range of pages which are held in memory.
// Only these pages can be selected using [Document.SwitchToPage].
func (doc *Document) BufferedPageRange() PageRange {
	return PageRange{Start: doc.pageBufferStart, Count: len(doc.pages)}
}

// SwitchToPage makes the page with absolute page number n the current
// page.  Only pages in the page buffer can be selected; pages which have
// already been written to the output cannot be modified.
func (doc *Document) SwitchToPage(n int) (*Page, error) {
	i := n - doc.pageBufferStart
	if i < 0 || i >= len(doc.pages) {
		return nil, &PageRangeError{
			Index: n,
			Start: doc.pageBufferStart,
			Count: len(doc.pages),
		}
	}
	doc.page = doc.pages[i]
	return doc.page, nil
}

// FlushPages writes all buffered pages to the output, in page order.
//
// The page buffer is emptied before the first page is written, so that
// finalization callbacks can safely add new pages.  Pages added by such
// callbacks are not written by the current call.
func (doc *Document) FlushPages() error {
	pages := doc.pages
	doc.pages = nil
	doc.pageBufferStart += len(pages)

	for _, p := range pages {
		p.finalize(doc.out)
	}
	return doc.Err()
}

// End writes all remaining pages, resets the printer and closes the
// output.  The document cannot be used after End has been called.
func (doc *Document) End() error {
	if doc.ended {
		return ErrEnded
	}
	doc.FlushPages()
	doc.ended = true

	err := doc.out.Close(doc.reset)
	if doc.err != nil {
		return doc.err
	}
	return err
}

// Mode returns the sub-language which is currently active in the output
// stream.
func (doc *Document) Mode() pcl.Mode {
	return doc.out.Mode()
}

// Written returns the number of bytes written to the output so far.
func (doc *Document) Written() int64 {
	return doc.out.Written()
}

// Err returns the first error which occurred while writing the document.
func (doc *Document) Err() error {
	if doc.err != nil {
		return doc.err
	}
	return doc.out.Err
}

func (doc *Document) setErr(err error) {
	if doc.err == nil && err != nil {
		doc.err = err
	}
}

// WritePCL writes a PCL command to the current page.
func (doc *Document) WritePCL(cmd string) {
	doc.target().WritePCL(cmd)
}

// WriteText writes text to the current page.
func (doc *Document) WriteText(data []byte) {
	doc.target().WriteText(data)
}

// WriteBinary writes raw bytes to the current page.
func (doc *Document) WriteBinary(data []byte) {
	doc.target().WriteBinary(data)
}

// WriteHPGL writes HP-GL/2 code to the current page.
func (doc *Document) WriteHPGL(data string) {
	doc.target().WriteHPGL(data)
}

func (doc *Document) target() pcl.Emitter {
	if doc.page != nil {
		return doc.page
	}
	return doc.out
}
