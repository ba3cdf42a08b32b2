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

import "strings"

// Paper describes a physical page size.
type Paper struct {
	Name string

	// Code is the value of the PCL page size command (ESC & l # A).
	Code int

	// Width and Height give the size of the paper in PostScript points,
	// in portrait orientation.
	Width, Height float64
}

// Default paper sizes.
var (
	Executive = &Paper{Name: "Executive", Code: 1, Width: 522, Height: 756}
	Letter    = &Paper{Name: "Letter", Code: 2, Width: 612, Height: 792}
	Legal     = &Paper{Name: "Legal", Code: 3, Width: 612, Height: 1008}
	Ledger    = &Paper{Name: "Ledger", Code: 6, Width: 792, Height: 1224}
	A5        = &Paper{Name: "A5", Code: 25, Width: 420.945, Height: 595.276}
	A4        = &Paper{Name: "A4", Code: 26, Width: 595.276, Height: 841.890}
	A3        = &Paper{Name: "A3", Code: 27, Width: 841.890, Height: 1190.551}
	COM10     = &Paper{Name: "COM10", Code: 81, Width: 297, Height: 684}
	DL        = &Paper{Name: "DL", Code: 90, Width: 311.811, Height: 623.622}
	C5        = &Paper{Name: "C5", Code: 91, Width: 459.213, Height: 649.134}
)

var papers = []*Paper{Executive, Letter, Legal, Ledger, A5, A4, A3, COM10, DL, C5}

// PaperByName returns the paper size with the given name.
// The comparison is case-insensitive.
func PaperByName(name string) (*Paper, bool) {
	for _, p := range papers {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Orientation selects portrait or landscape printing.
type Orientation int

// These are the values of the PCL orientation command (ESC & l # O).
const (
	Portrait  Orientation = 0
	Landscape Orientation = 1
)

// Margins give the distance from the edges of the logical page, in
// PostScript points.
type Margins struct {
	Top, Right, Bottom, Left float64
}
