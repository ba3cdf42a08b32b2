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

import "fmt"

// Mode identifies the sub-language which currently owns the output stream.
type Mode int

// These are the valid modes of a [Writer].
const (
	ModePCL    Mode = iota // PCL escape sequences
	ModeText               // printable text
	ModeBinary             // raw bytes, e.g. raster data
	ModeHPGL               // HP-GL/2 vector graphics
)

func (m Mode) String() string {
	switch m {
	case ModePCL:
		return "PCL"
	case ModeText:
		return "Text"
	case ModeBinary:
		return "Binary"
	case ModeHPGL:
		return "HPGL"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
