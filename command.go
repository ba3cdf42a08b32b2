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
	"strconv"
	"strings"
)

// Esc is the escape character which starts every PCL command.
const Esc = "\x1b"

// Fixed commands used by the [Writer].
const (
	Reset     = Esc + "E"   // printer reset
	EnterHPGL = Esc + "%0B" // enter HP-GL/2 mode, using the previous pen position
	InitHPGL  = "IN;"       // initialise HP-GL/2 state
	EnterPCL  = Esc + "%0A" // re-enter PCL mode, using the previous cursor position
)

// minMergeLength is the length of the shortest command which can be
// combined with its predecessor: the escape character, the parameterized
// and group characters, at least one value character and the terminator.
const minMergeLength = 5

// Cmd formats a parameterized PCL command.  The prefix consists of the
// parameterized character and the group character, for example "&l".
// The terminator must be an upper-case letter.
//
// Cmd("&l", 26, 'A') returns "\x1b&l26A".
func Cmd(prefix string, value int, term byte) string {
	return Esc + prefix + strconv.Itoa(value) + string(term)
}

// CmdFloat is like [Cmd], but allows a fractional value.  The value is
// written with at most four decimal places.
func CmdFloat(prefix string, value float64, term byte) string {
	return Esc + prefix + formatValue(value) + string(term)
}

func formatValue(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// canMerge reports whether cmd can be appended to the pending command.
// Both commands must start with the escape character and must share the
// parameterized and group characters.  Commands without a group
// character, like the symbol set selection ESC ( 10U, are never merged.
func canMerge(pending, cmd string) bool {
	if len(cmd) < minMergeLength || len(pending) < 3 {
		return false
	}
	if !isGroupChar(cmd[2]) {
		return false
	}
	return pending[1:3] == cmd[1:3]
}

// isGroupChar reports whether c is in the range of PCL group characters.
func isGroupChar(c byte) bool {
	return c >= '`' && c <= '~'
}

// merge combines two commands with the same prefix.  All letters of the
// combined command are lower case, except for the final terminator.
//
// merge("\x1b&l1O", "\x1b&l2A") returns "\x1b&l1o2A".
func merge(pending, cmd string) string {
	return strings.ToLower(pending) + cmd[3:]
}
