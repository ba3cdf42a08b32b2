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

package font

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// SymbolSet is a PCL symbol set, which maps character codes to glyphs.
type SymbolSet struct {
	// Name is a human readable name of the symbol set.
	Name string

	// ID is the PCL symbol set identifier, for example "19U".
	ID string

	// cm describes the character codes, or nil if only ASCII is supported.
	cm *charmap.Charmap
}

// Supported symbol sets.
var (
	Roman8      = &SymbolSet{Name: "Roman-8", ID: "8U"}
	Latin1      = &SymbolSet{Name: "ISO 8859-1 Latin 1", ID: "0N", cm: charmap.ISO8859_1}
	Latin2      = &SymbolSet{Name: "ISO 8859-2 Latin 2", ID: "2N", cm: charmap.ISO8859_2}
	Cyrillic    = &SymbolSet{Name: "ISO 8859-5 Cyrillic", ID: "10N", cm: charmap.ISO8859_5}
	PC8         = &SymbolSet{Name: "PC-8", ID: "10U", cm: charmap.CodePage437}
	PC850       = &SymbolSet{Name: "PC-850", ID: "12U", cm: charmap.CodePage850}
	Windows1252 = &SymbolSet{Name: "Windows 3.1 Latin 1", ID: "19U", cm: charmap.Windows1252}
)

var symbolSets = []*SymbolSet{
	Roman8, Latin1, Latin2, Cyrillic, PC8, PC850, Windows1252,
}

// SymbolSetByID returns the symbol set with the given PCL identifier.
// The comparison is case-insensitive.
func SymbolSetByID(id string) (*SymbolSet, bool) {
	for _, ss := range symbolSets {
		if strings.EqualFold(ss.ID, id) {
			return ss, true
		}
	}
	return nil, false
}

// UnsupportedError is returned by [SymbolSet.Encode] if a character cannot
// be represented in the symbol set.
type UnsupportedError struct {
	SymbolSet *SymbolSet
	Rune      rune
}

func (err *UnsupportedError) Error() string {
	return fmt.Sprintf("character %q not in symbol set %s", err.Rune, err.SymbolSet.Name)
}

// Encode converts a UTF-8 string to character codes of the symbol set.
func (ss *SymbolSet) Encode(s string) ([]byte, error) {
	res := make([]byte, 0, len(s))
	for _, r := range s {
		var c byte
		var ok bool
		if ss.cm != nil {
			c, ok = ss.cm.EncodeRune(r)
		} else {
			// Roman-8 agrees with ASCII in the lower half.
			c, ok = byte(r), r < 0x80
		}
		if !ok {
			return nil, &UnsupportedError{SymbolSet: ss, Rune: r}
		}
		res = append(res, c)
	}
	return res, nil
}

// String returns the PCL identifier of the symbol set.
func (ss *SymbolSet) String() string {
	return ss.ID
}
