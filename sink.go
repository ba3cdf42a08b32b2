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
	"io"
)

// Sink receives the output of a [Writer].
//
// Chunks are delivered in stream order.  Close is called exactly once,
// after the last chunk.  Emit may block, for example until a consumer
// has read the previous data.
type Sink interface {
	Emit(chunk []byte) error
	Close() error
}

// NewStreamSink returns a sink which writes all chunks to w.
// If w implements [io.Closer], it is closed when the sink is closed.
func NewStreamSink(w io.Writer) Sink {
	return &streamSink{w: w}
}

type streamSink struct {
	w io.Writer
}

func (s *streamSink) Emit(chunk []byte) error {
	_, err := s.w.Write(chunk)
	return err
}

func (s *streamSink) Close() error {
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Pipe is a demand-driven sink.  The producer writes to the pipe via
// Emit, the consumer pulls the data via Read.
//
// Each call to Emit blocks until the consumer has read the complete chunk,
// so the producer never runs ahead of the consumer.  Producer and consumer
// must run in different goroutines.
type Pipe struct {
	r *io.PipeReader
	w *io.PipeWriter
}

// NewPipe creates a new, empty pipe.
func NewPipe() *Pipe {
	r, w := io.Pipe()
	return &Pipe{r: r, w: w}
}

// Read reads data from the pipe.
// This implements the [io.Reader] interface.
// After the producer has closed the pipe, Read returns [io.EOF].
func (p *Pipe) Read(buf []byte) (int, error) {
	return p.r.Read(buf)
}

// Emit sends a chunk to the consumer and waits until it has been read.
// If the consumer has called Abort, the abort error is returned.
func (p *Pipe) Emit(chunk []byte) error {
	_, err := p.w.Write(chunk)
	return err
}

// Close signals the end of the stream to the consumer.
func (p *Pipe) Close() error {
	return p.w.Close()
}

// Abort is called by the consumer to stop reading.  All further calls to
// Emit fail with err.  If err is nil, [io.ErrClosedPipe] is used.
func (p *Pipe) Abort(err error) error {
	return p.r.CloseWithError(err)
}
