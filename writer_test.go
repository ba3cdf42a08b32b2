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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pcl/internal/debug/memsink"
)

func TestWritePCL(t *testing.T) {
	type testCase struct {
		in      []string
		chunks  []string
		pending string
	}
	cases := []testCase{
		{ // same group: merged
			in:      []string{"\x1b&l1O", "\x1b&l2A"},
			pending: "\x1b&l1o2A",
		},
		{ // three commands of the same group
			in:      []string{"\x1b*v255A", "\x1b*v0B", "\x1b*v0C", "\x1b*v1I"},
			pending: "\x1b*v255a0b0c1I",
		},
		{ // different group: not merged
			in:      []string{"\x1b&l1O", "\x1b*p100X"},
			chunks:  []string{"\x1b&l1O"},
			pending: "\x1b*p100X",
		},
		{ // same parameterized character, different group
			in:      []string{"\x1b&l1O", "\x1b&a720H"},
			chunks:  []string{"\x1b&l1O"},
			pending: "\x1b&a720H",
		},
		{ // short commands are never merged into their predecessor
			in:      []string{"\x1b&l1O", "\x1bE"},
			chunks:  []string{"\x1b&l1O"},
			pending: "\x1bE",
		},
		{ // the end raster command is too short to be merged
			in:      []string{"\x1b*r1A", "\x1b*rB"},
			chunks:  []string{"\x1b*r1A"},
			pending: "\x1b*rB",
		},
		{ // a short command can still absorb its successor
			in:      []string{"\x1b*rB", "\x1b*r1A"},
			pending: "\x1b*rb1A",
		},
		{
			in:      []string{"\x1b(s1P", "\x1b(s12V"},
			pending: "\x1b(s1p12V",
		},
		{ // short after short
			in:      []string{"\x1b(0N", "\x1b(s1P"},
			chunks:  []string{"\x1b(0N"},
			pending: "\x1b(s1P",
		},
		{ // the reset command cannot be extended
			in:      []string{"\x1bE", "\x1b&l1O"},
			chunks:  []string{"\x1bE"},
			pending: "\x1b&l1O",
		},
		{ // symbol set selections have no group character
			in:      []string{"\x1b(10U", "\x1b(19U"},
			chunks:  []string{"\x1b(10U"},
			pending: "\x1b(19U",
		},
		{ // primary font selection by ID
			in:      []string{"\x1b(12X", "\x1b(15X"},
			chunks:  []string{"\x1b(12X"},
			pending: "\x1b(15X",
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			sink := memsink.New()
			w := NewWriter(sink)
			for _, cmd := range tc.in {
				w.WritePCL(cmd)
			}
			if w.Err != nil {
				t.Fatal(w.Err)
			}
			if d := cmp.Diff(tc.chunks, sink.Chunks); d != "" {
				t.Errorf("chunks (-want +got):\n%s", d)
			}
			if w.Pending() != tc.pending {
				t.Errorf("pending: expected %q, got %q", tc.pending, w.Pending())
			}
			if w.Mode() != ModePCL {
				t.Errorf("expected PCL mode, got %s", w.Mode())
			}
		})
	}
}

func TestMergeEmitsOneChunk(t *testing.T) {
	sink := memsink.New()
	w := NewWriter(sink)
	w.WritePCL("\x1b&l1O")
	w.WritePCL("\x1b&l2A")
	w.Flush()

	want := []string{"\x1b&l1o2A"}
	if d := cmp.Diff(want, sink.Chunks); d != "" {
		t.Errorf("chunks (-want +got):\n%s", d)
	}
}

func TestModeSwitching(t *testing.T) {
	type step struct {
		mode Mode
		data string
	}
	type testCase struct {
		steps  []step
		chunks []string
		final  Mode
	}
	cases := []testCase{
		{
			steps: []step{
				{ModePCL, "\x1b&l1O"},
				{ModeHPGL, "PU0,0;"},
				{ModeHPGL, "PD10,10;"},
			},
			chunks: []string{"\x1b&l1O", EnterHPGL, InitHPGL, "PU0,0;", "PD10,10;"},
			final:  ModeHPGL,
		},
		{
			steps: []step{
				{ModeHPGL, "PU0,0;"},
				{ModeText, "abc"},
			},
			chunks: []string{EnterHPGL, InitHPGL, "PU0,0;", EnterPCL, "abc"},
			final:  ModeText,
		},
		{
			steps: []step{
				{ModeHPGL, "PU0,0;"},
				{ModePCL, "\x1b&a0H"},
			},
			chunks: []string{EnterHPGL, InitHPGL, "PU0,0;", EnterPCL},
			final:  ModePCL,
		},
		{
			steps: []step{
				{ModeHPGL, "PU0,0;"},
				{ModeBinary, "\x00\x01"},
				{ModeHPGL, "PD;"},
			},
			chunks: []string{EnterHPGL, InitHPGL, "PU0,0;", EnterPCL, "\x00\x01", EnterHPGL, InitHPGL, "PD;"},
			final:  ModeHPGL,
		},
		{
			steps: []step{
				{ModePCL, "\x1b&a720H"},
				{ModeText, "x"},
				{ModeText, "y"},
				{ModeBinary, "z"},
			},
			chunks: []string{"\x1b&a720H", "x", "y", "z"},
			final:  ModeBinary,
		},
		{
			steps: []step{
				{ModeText, "x"},
				{ModePCL, "\x1b&a720H"},
				{ModePCL, "\x1b&a1440V"},
				{ModeText, "y"},
			},
			chunks: []string{"x", "\x1b&a720h1440V", "y"},
			final:  ModeText,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			sink := memsink.New()
			w := NewWriter(sink)
			for _, s := range tc.steps {
				switch s.mode {
				case ModePCL:
					w.WritePCL(s.data)
				case ModeText:
					w.WriteText([]byte(s.data))
				case ModeBinary:
					w.WriteBinary([]byte(s.data))
				case ModeHPGL:
					w.WriteHPGL(s.data)
				}
			}
			if w.Err != nil {
				t.Fatal(w.Err)
			}
			if d := cmp.Diff(tc.chunks, sink.Chunks); d != "" {
				t.Errorf("chunks (-want +got):\n%s", d)
			}
			if w.Mode() != tc.final {
				t.Errorf("expected mode %s, got %s", tc.final, w.Mode())
			}
		})
	}
}

func TestClose(t *testing.T) {
	sink := memsink.New()
	w := NewWriter(sink)
	w.WriteHPGL("PU;")
	err := w.Close(Reset)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{EnterHPGL, InitHPGL, "PU;", EnterPCL, Reset}
	if d := cmp.Diff(want, sink.Chunks); d != "" {
		t.Errorf("chunks (-want +got):\n%s", d)
	}
	if sink.Closed != 1 {
		t.Errorf("sink closed %d times", sink.Closed)
	}
	if w.Mode() != ModePCL {
		t.Errorf("expected PCL mode after close, got %s", w.Mode())
	}

	err = w.Close(Reset)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if sink.Closed != 1 {
		t.Errorf("sink closed %d times", sink.Closed)
	}

	w.WriteText([]byte("late"))
	if !errors.Is(w.Err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", w.Err)
	}
	if len(sink.Chunks) != len(want) {
		t.Errorf("data written after close: %q", sink.Chunks[len(want):])
	}
}

func TestCloseResetNotMerged(t *testing.T) {
	sink := memsink.New()
	w := NewWriter(sink)
	w.WritePCL("\x1b&l0H")
	err := w.Close(Reset)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"\x1b&l0H", Reset}
	if d := cmp.Diff(want, sink.Chunks); d != "" {
		t.Errorf("chunks (-want +got):\n%s", d)
	}
}

func TestStickyError(t *testing.T) {
	errTest := errors.New("disk full")
	sink := &memsink.Sink{Fail: errTest, FailAfter: 1}
	w := NewWriter(sink)
	w.WriteText([]byte("a"))
	w.WriteText([]byte("b"))
	w.WriteText([]byte("c"))

	if !errors.Is(w.Err, errTest) {
		t.Fatalf("expected %v, got %v", errTest, w.Err)
	}
	if d := cmp.Diff([]string{"a"}, sink.Chunks); d != "" {
		t.Errorf("chunks (-want +got):\n%s", d)
	}

	err := w.Close(Reset)
	if !errors.Is(err, errTest) {
		t.Errorf("expected %v, got %v", errTest, err)
	}
	if sink.Closed != 1 {
		t.Errorf("sink closed %d times", sink.Closed)
	}
}

func TestLargeBinary(t *testing.T) {
	sink := memsink.New()
	w := NewWriter(sink)
	data := bytes.Repeat([]byte{0xAA}, 2*MaxChunk+10)
	w.WriteBinary(data)
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	if len(sink.Chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(sink.Chunks))
	}
	if sink.String() != string(data) {
		t.Error("data corrupted")
	}
	if w.Written() != int64(len(data)) {
		t.Errorf("expected %d bytes written, got %d", len(data), w.Written())
	}
}

func TestPipe(t *testing.T) {
	p := NewPipe()
	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(p)
		done <- data
	}()

	w := NewWriter(p)
	w.WritePCL("\x1b&l26A")
	w.WritePCL("\x1b&l0O")
	w.WriteText([]byte("hello"))
	w.WriteHPGL("PU0,0;")
	err := w.Close(Reset)
	if err != nil {
		t.Fatal(err)
	}

	got := string(<-done)
	want := "\x1b&l26a0O" + "hello" + EnterHPGL + InitHPGL + "PU0,0;" + EnterPCL + Reset
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPipeAbort(t *testing.T) {
	p := NewPipe()
	errStop := errors.New("consumer gone")
	go func() {
		buf := make([]byte, 4)
		p.Read(buf)
		p.Abort(errStop)
	}()

	w := NewWriter(p)
	w.WriteText([]byte("abcd"))
	w.WriteText([]byte(strings.Repeat("x", 100)))
	w.WriteText([]byte("more"))
	if !errors.Is(w.Err, errStop) {
		t.Errorf("expected %v, got %v", errStop, w.Err)
	}
}

func TestStreamSink(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(NewStreamSink(buf))
	w.WritePCL(Cmd("&l", 26, 'A'))
	w.WritePCL(Cmd("&l", 1, 'O'))
	w.WriteText([]byte("x"))
	err := w.Close(Reset)
	if err != nil {
		t.Fatal(err)
	}
	want := "\x1b&l26a1Ox\x1bE"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	if w.Written() != int64(len(want)) {
		t.Errorf("expected %d bytes written, got %d", len(want), w.Written())
	}
}

func TestCmdFloat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "\x1b*c0X"},
		{10, "\x1b*c10X"},
		{0.5, "\x1b*c0.5X"},
		{-1.25, "\x1b*c-1.25X"},
		{1.00001, "\x1b*c1X"},
		{-0.00001, "\x1b*c0X"},
	}
	for _, tc := range cases {
		got := CmdFloat("*c", tc.x, 'X')
		if got != tc.want {
			t.Errorf("%g: expected %q, got %q", tc.x, tc.want, got)
		}
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{
		ModePCL:    "PCL",
		ModeText:   "Text",
		ModeBinary: "Binary",
		ModeHPGL:   "HPGL",
		Mode(9):    "Mode(9)",
	}
	for m, want := range names {
		if m.String() != want {
			t.Errorf("expected %q, got %q", want, m.String())
		}
	}
}
