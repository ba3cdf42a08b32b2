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
	"errors"
	"fmt"
)

// MaxChunk is the largest number of bytes passed to [Sink.Emit] in one
// call, when writing text or binary data.  Longer payloads are split.
const MaxChunk = 64 * 1024

// ErrClosed is returned when a Writer is used after Close.
var ErrClosed = errors.New("PCL writer is closed")

// Writer multiplexes PCL commands, text, binary data and HP-GL/2 code
// into a single output stream.
//
// The Writer keeps track of which sub-language is active, inserts the
// commands needed to switch between PCL and HP-GL/2, and combines
// consecutive PCL commands of the same group into one command.
//
// Errors are sticky: once an operation fails, Err is set and all further
// writes are ignored.
type Writer struct {
	Err error

	sink    Sink
	mode    Mode
	pending string
	written int64
	closed  bool
}

var _ Emitter = (*Writer)(nil)

// NewWriter allocates a new Writer.  The Writer starts in PCL mode.
func NewWriter(sink Sink) *Writer {
	return &Writer{
		sink: sink,
		mode: ModePCL,
	}
}

// Mode returns the currently active sub-language.
func (w *Writer) Mode() Mode {
	return w.mode
}

// Pending returns the PCL command which is held back for merging,
// or the empty string if there is none.
func (w *Writer) Pending() string {
	return w.pending
}

// Written returns the number of bytes passed to the sink so far.
func (w *Writer) Written() int64 {
	return w.written
}

// WritePCL writes a PCL escape sequence.
//
// If the previous command is still pending and both commands share the
// parameterized and group characters, the two commands are combined.
// Otherwise the pending command is sent to the sink and cmd is held back
// in its place.
func (w *Writer) WritePCL(cmd string) {
	if !w.isValid("WritePCL") {
		return
	}

	switch w.mode {
	case ModeHPGL:
		w.leaveHPGL()
	case ModePCL, ModeText, ModeBinary:
		// pass
	}

	if w.pending != "" && canMerge(w.pending, cmd) {
		w.pending = merge(w.pending, cmd)
	} else {
		w.Flush()
		w.pending = cmd
	}
	w.mode = ModePCL
}

// WriteText writes literal text.
func (w *Writer) WriteText(data []byte) {
	if !w.isValid("WriteText") {
		return
	}
	w.leave()
	w.emitData(data)
	w.mode = ModeText
}

// WriteBinary writes raw bytes.
func (w *Writer) WriteBinary(data []byte) {
	if !w.isValid("WriteBinary") {
		return
	}
	w.leave()
	w.emitData(data)
	w.mode = ModeBinary
}

// WriteHPGL writes HP-GL/2 code.  If necessary, the stream is switched to
// HP-GL/2 mode first.
func (w *Writer) WriteHPGL(data string) {
	if !w.isValid("WriteHPGL") {
		return
	}

	switch w.mode {
	case ModeHPGL:
		// already bracketed
	case ModePCL:
		w.Flush()
		w.enterHPGL()
	case ModeText, ModeBinary:
		w.enterHPGL()
	}
	w.emit(data)
	w.mode = ModeHPGL
}

// Flush sends the pending PCL command, if any, to the sink.
func (w *Writer) Flush() {
	if w.pending == "" {
		return
	}
	cmd := w.pending
	w.pending = ""
	w.emit(cmd)
}

// Close ends the stream.  The reset command is written first, so that the
// stream always ends in PCL mode, then the pending command is flushed and
// the sink is closed.  If reset is empty, no reset command is written.
//
// Close must be called exactly once.
func (w *Writer) Close(reset string) error {
	if w.closed {
		return ErrClosed
	}
	if reset != "" {
		w.WritePCL(reset)
	} else if w.mode == ModeHPGL {
		w.leaveHPGL()
	}
	w.Flush()
	w.closed = true

	err := w.sink.Close()
	if w.Err != nil {
		return w.Err
	}
	w.Err = err
	return err
}

// leave prepares the stream for text or binary data.
func (w *Writer) leave() {
	switch w.mode {
	case ModeHPGL:
		w.leaveHPGL()
	case ModePCL:
		w.Flush()
	case ModeText, ModeBinary:
		// pass
	}
}

func (w *Writer) enterHPGL() {
	w.emit(EnterHPGL)
	w.emit(InitHPGL)
}

func (w *Writer) leaveHPGL() {
	w.emit(EnterPCL)
	w.mode = ModePCL
}

func (w *Writer) emitData(data []byte) {
	for len(data) > MaxChunk {
		w.emitBytes(data[:MaxChunk])
		data = data[MaxChunk:]
	}
	if len(data) > 0 {
		w.emitBytes(data)
	}
}

func (w *Writer) emit(s string) {
	w.emitBytes([]byte(s))
}

func (w *Writer) emitBytes(b []byte) {
	if w.Err != nil {
		return
	}
	err := w.sink.Emit(b)
	if err != nil {
		w.Err = fmt.Errorf("PCL output: %w", err)
		return
	}
	w.written += int64(len(b))
}

func (w *Writer) isValid(op string) bool {
	if w.Err != nil {
		return false
	}
	if w.closed {
		w.Err = fmt.Errorf("%s: %w", op, ErrClosed)
		return false
	}
	return true
}
