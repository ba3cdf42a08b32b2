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

// Licensify adds the license header to all Go source files below the
// current directory.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/pcl - a library for writing PCL printer data streams
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

`

func main() {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && isIgnored(d.Name()) {
				fmt.Println("skip " + path)
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		newBody, status := addHeader(body)
		switch status {
		case statusOK:
			return nil
		case statusUnknown:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		fmt.Println("updating " + path)
		return os.WriteFile(path, newBody, 0o666)
	})
	if err != nil {
		log.Fatal(err)
	}
}

type status int

const (
	statusOK status = iota
	statusUpdated
	statusUnknown
)

// addHeader returns the file contents with the license header added.
// Files which start with a different comment are left alone.
func addHeader(body []byte) ([]byte, status) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, statusOK
	}
	if !bytes.HasPrefix(body, []byte("package ")) {
		return body, statusUnknown
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, statusUpdated
}

// isIgnored reports whether a directory is skipped.  This covers hidden
// directories and directories ignored by the go tool.
func isIgnored(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata"
}
