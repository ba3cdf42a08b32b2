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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/document"
	"seehuhn.de/go/pcl/internal/debug/memsink"
	"seehuhn.de/go/pcl/text"
)

const sample = `// a test page
page Letter landscape copies 2

font timesnewroman 10 bold italic
text 72 72 "Hello\nWorld"
pen 2 0.5
line 0 0 72 0
rect 10 10 20 20 fill
path "M0 0 L10 10" fill
color 3 #ff0000
switch 0
flush
`

func TestParse(t *testing.T) {
	s, err := ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Commands) != 10 {
		t.Fatalf("expected 10 commands, got %d", len(s.Commands))
	}

	page := s.Commands[0].Page
	if page == nil || len(page.Options) != 3 {
		t.Fatalf("unexpected page command %#v", page)
	}
	if page.Options[0].Name != "Letter" || page.Options[1].Name != "landscape" {
		t.Errorf("unexpected page options %q %q", page.Options[0].Name, page.Options[1].Name)
	}
	if page.Options[2].Copies == nil || *page.Options[2].Copies != 2 {
		t.Errorf("copies not parsed")
	}

	f := s.Commands[1].Font
	want := &FontCmd{Typeface: "timesnewroman", Size: 10, Styles: []string{"bold", "italic"}}
	if d := cmp.Diff(want, f); d != "" {
		t.Errorf("font (-want +got):\n%s", d)
	}

	if txt := s.Commands[2].Text; txt == nil || txt.Text != "Hello\nWorld" {
		t.Errorf("unexpected text command %#v", txt)
	}
	if pen := s.Commands[3].Pen; pen == nil || pen.Pen != 2 || pen.Width == nil || *pen.Width != 0.5 {
		t.Errorf("unexpected pen command %#v", pen)
	}
	if r := s.Commands[5].Rect; r == nil || !r.Fill {
		t.Errorf("unexpected rect command %#v", r)
	}
	if p := s.Commands[6].Path; p == nil || p.Data != "M0 0 L10 10" || !p.Fill {
		t.Errorf("unexpected path command %#v", p)
	}
	if c := s.Commands[7].Color; c == nil || c.Index != 3 || c.Color != "#ff0000" {
		t.Errorf("unexpected color command %#v", c)
	}
	if sw := s.Commands[8].Switch; sw == nil || sw.Page != 0 {
		t.Errorf("unexpected switch command %#v", sw)
	}
	if !s.Commands[9].Flush {
		t.Error("flush not parsed")
	}
	if s.Commands[2].Pos.Line != 5 {
		t.Errorf("expected line 5, got %d", s.Commands[2].Pos.Line)
	}
}

func TestParseError(t *testing.T) {
	for _, in := range []string{
		"text 1 2\n",
		"line 1 2 3\n",
		"page A4\nbogus\n",
		"color 1 red\n",
	} {
		_, err := ParseString(in)
		if err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestRunText(t *testing.T) {
	sink := memsink.New()
	doc := document.New(sink, &document.Options{NoAutoFirstPage: true})
	s, err := ParseString("page A4\nfont courier 12\ntext 72 72 \"Hi\"\n")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.End()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"\x1b&l26a0o0E",
		"\x1b(19U", "\x1b(s0p10h12v0s0b4099T",
		"\x1b&a720h720V", "Hi",
		"\x1b&l0H", "\x1bE",
	}
	if d := cmp.Diff(want, sink.Chunks); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestRunGraphics(t *testing.T) {
	sink := memsink.New()
	doc := document.New(sink, &document.Options{NoAutoFirstPage: true})
	s, err := ParseString("page letter\nline 0 0 72 0")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.End()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"\x1b&l2a0o0E",
		"\x1b*p0x0Y",
		"\x1b*c6120x7920y0T",
		pcl.EnterHPGL, pcl.InitHPGL,
		"SP1;PW0.35;PU0,11176;PD1016,11176;",
		pcl.EnterPCL,
		"\x1b&l0H", "\x1bE",
	}
	if d := cmp.Diff(want, sink.Chunks); d != "" {
		t.Errorf("output (-want +got):\n%s", d)
	}
}

func TestRunSwitch(t *testing.T) {
	sink := memsink.New()
	doc := document.New(sink, &document.Options{
		BufferPages:     true,
		NoAutoFirstPage: true,
	})
	s, err := ParseString(`font courier 12
page
page
text 0 0 "PAGEB"
switch 0
text 0 0 "PAGEA"
`)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.End()
	if err != nil {
		t.Fatal(err)
	}

	// Both pages select the font, since the pages are written in page
	// order.
	out := sink.String()
	if strings.Count(out, "\x1b(19U") != 2 {
		t.Errorf("font selected %d times", strings.Count(out, "\x1b(19U"))
	}
	a := strings.Index(out, "PAGEA")
	b := strings.Index(out, "PAGEB")
	if a < 0 || b < 0 || a > b {
		t.Errorf("pages out of order: %q", out)
	}
}

func TestRunColor(t *testing.T) {
	sink := memsink.New()
	doc := document.New(sink, nil)
	s, err := ParseString("color 1 #0000ff\npencolor 2 #00ff00\n")
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.End()
	if err != nil {
		t.Fatal(err)
	}

	out := sink.String()
	for _, want := range []string{
		"\x1b*v6W\x00\x01\x08\x08\x08\x08",
		"\x1b*v0a0b255c1i1S",
		"PC2,0,255,0;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"text 1 1 \"x\"", "1:1: no font selected"},
		{"page A0", "1:1: unknown page option \"A0\""},
		{"\nfont helvetica 10", "2:1: unknown typeface \"helvetica\""},
		{"switch 4", "1:1: switchToPage(4) out of bounds, current buffer covers pages 0 to 0"},
		{"font courier 10\ntext 0 0 \"Ж\"", "2:1: Show: character 'Ж' not in symbol set Windows 3.1 Latin 1"},
	}
	for _, c := range cases {
		s, err := ParseString(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		doc := document.New(memsink.New(), nil)
		err = s.Run(doc)
		if err == nil {
			t.Errorf("%q: no error", c.in)
			continue
		}
		if err.Error() != c.want {
			t.Errorf("%q: expected %q, got %q", c.in, c.want, err.Error())
		}
	}

	s, _ := ParseString("text 1 1 \"x\"")
	err := s.Run(document.New(memsink.New(), nil))
	if !errors.Is(err, text.ErrNoFont) {
		t.Errorf("expected ErrNoFont, got %v", err)
	}
}
