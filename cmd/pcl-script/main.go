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

// Pcl-script converts a page description script into a PCL file.
//
// Usage:
//
//	pcl-script [options] input.pcls
//
// The output is written to standard output, unless the -o option is
// given.  PCL data is never written to a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/document"
	"seehuhn.de/go/pcl/internal/buildinfo"
	"seehuhn.de/go/pcl/internal/profile"
	"seehuhn.de/go/pcl/script"
)

func main() {
	outName := flag.String("o", "", "name of the output file (default: standard output)")
	force := flag.Bool("f", false, "overwrite an existing output file")
	buffer := flag.Bool("buffer", false, "keep all pages in memory until the end, to allow switching between pages")
	version := flag.Bool("version", false, "print version information and exit")
	cpuprofile := flag.String("cpuprofile", "", "write CPU profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("pcl-script"))
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pcls\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pcl-script:", err)
		os.Exit(1)
	}
	err = run(flag.Arg(0), *outName, *force, *buffer)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pcl-script:", err)
		os.Exit(1)
	}
}

var errTerminal = errors.New("refusing to write PCL data to a terminal")

func run(inName, outName string, force, buffer bool) error {
	in, err := os.Open(inName)
	if err != nil {
		return err
	}
	s, err := script.Parse(inName, in)
	in.Close()
	if err != nil {
		return err
	}

	var out io.WriteCloser
	if outName == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		out = os.Stdout
	} else {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if !force {
			flags |= os.O_EXCL
		}
		out, err = os.OpenFile(outName, flags, 0o666)
		if err != nil {
			return err
		}
	}

	// The document is produced in a separate goroutine and handed over
	// through a pipe, so that no more than one chunk is held in memory
	// between the script and the output file.
	pipe := pcl.NewPipe()
	doc := document.New(pipe, &document.Options{
		BufferPages:     buffer,
		NoAutoFirstPage: true,
	})
	done := make(chan error, 1)
	go func() {
		err := s.Run(doc)
		endErr := doc.End()
		if err == nil {
			err = endErr
		}
		done <- err
	}()

	_, copyErr := io.Copy(out, pipe)
	if copyErr != nil {
		pipe.Abort(copyErr)
	}
	runErr := <-done
	closeErr := out.Close()

	if copyErr != nil {
		return copyErr
	}
	if runErr != nil {
		return runErr
	}
	return closeErr
}
