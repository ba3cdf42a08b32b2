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

// Package pcl provides support for writing PCL 5 printer data streams.
//
// A PCL stream mixes several languages: PCL escape sequences, printable
// text, raw binary data and HP-GL/2 vector graphics.  The [Writer] type
// multiplexes these into one linear stream, inserting the required mode
// switches and combining consecutive PCL commands where possible:
//
//	w := pcl.NewWriter(pcl.NewStreamSink(fd))
//	w.WritePCL("\x1b&a720H")   // horizontal cursor position
//	w.WritePCL("\x1b&a1440V")  // vertical, merged into "\x1b&a720h1440V"
//	w.WriteText([]byte("Hello"))
//	w.WriteHPGL("PU0,0;PD1000,1000;")
//	err := w.Close(pcl.Reset)
//
// Content producers only depend on the [Emitter] interface.  Documents
// consisting of several pages are built using the
// [seehuhn.de/go/pcl/document] package.
package pcl
