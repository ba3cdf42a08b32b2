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
	"errors"
	"strconv"
)

var (
	// ErrPageClosed indicates that content was written to a page which has
	// already been written to the output.
	ErrPageClosed = errors.New("page already finalized")

	// ErrEnded is returned when a document is used after End.
	ErrEnded = errors.New("document already ended")
)

// PageRangeError is returned by [Document.SwitchToPage] if the requested
// page is not in the page buffer.
type PageRangeError struct {
	// Index is the requested page number.
	Index int

	// Start and Count describe the pages which are currently buffered.
	Start, Count int
}

func (err *PageRangeError) Error() string {
	msg := "switchToPage(" + strconv.Itoa(err.Index) + ") out of bounds, "
	if err.Count == 0 {
		return msg + "no pages are buffered"
	}
	return msg + "current buffer covers pages " + strconv.Itoa(err.Start) +
		" to " + strconv.Itoa(err.Start+err.Count-1)
}

// PageError wraps an error which occurred while writing to a page.
type PageError struct {
	Index int
	Err   error
}

func (err *PageError) Error() string {
	return "page " + strconv.Itoa(err.Index) + ": " + err.Err.Error()
}

func (err *PageError) Unwrap() error {
	return err.Err
}
