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

// Package memsink implements an in-memory output sink for testing.
package memsink

import (
	"errors"
	"strings"
)

// Sink records all chunks it receives.
//
// This type implements the [seehuhn.de/go/pcl.Sink] interface.
type Sink struct {
	// Chunks are the chunks received so far, in order.
	Chunks []string

	// Closed counts the calls to Close.
	Closed int

	// Fail, if non-nil, is returned by Emit once FailAfter chunks have
	// been received.
	Fail      error
	FailAfter int
}

// New creates a new, empty Sink.
func New() *Sink {
	return &Sink{}
}

// Emit records a chunk.
func (s *Sink) Emit(chunk []byte) error {
	if s.Closed > 0 {
		return errEmitAfterClose
	}
	if s.Fail != nil && len(s.Chunks) >= s.FailAfter {
		return s.Fail
	}
	s.Chunks = append(s.Chunks, string(chunk))
	return nil
}

// Close marks the sink as closed.
func (s *Sink) Close() error {
	s.Closed++
	return nil
}

// String returns the concatenation of all chunks.
func (s *Sink) String() string {
	return strings.Join(s.Chunks, "")
}

// Reset discards all recorded chunks.
func (s *Sink) Reset() {
	s.Chunks = s.Chunks[:0]
}

var errEmitAfterClose = errors.New("emit after close")
