// This file is part of Gopher83.
//
// Gopher83 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher83 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher83.  If not, see <https://www.gnu.org/licenses/>.

package vat

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/gopher83/hardware/model"
)

// AnsName is the raw name of the answer variable.
const AnsName = 0x72

// name prefixes for matrix and equation objects.
const (
	matrixMarker   = 0x5c
	equationMarker = 0x5e
)

// Circ10 rotates the values 0 to 9 so that 0 becomes 1 and 9 becomes 0.
// Values of 10 and above are returned unchanged.
//
// The calculator numbers some variables from 1 to 9 and then 0 (Pic1 to Pic0,
// for example) but stores the index as 0 to 9.
func Circ10(z int) int {
	if z < 10 {
		return (z + 1) % 10
	}
	return z
}

// DisplayName returns the name of the variable as the calculator displays it.
// The second return value is false if the variable is not displayable.
func DisplayName(m model.Model, typeID uint8, name []uint8) (string, bool) {
	if len(name) == 1 && name[0] == AnsName {
		return "Ans", true
	}

	if m.Is86Family() {
		return decodeChars(name), true
	}

	// the byte at idx or zero if the name is shorter than that. short names
	// are NUL padded in memory
	at := func(idx int) int {
		if idx < len(name) {
			return int(name[idx])
		}
		return 0
	}

	switch typeID {
	case Prog, ProtProg, AppVar, Group:
		return decodeChars(name), true

	case Pict:
		if len(name) == 0 {
			return "", false
		}
		return fmt.Sprintf("Pic%d", Circ10(at(1))), true

	case GDB:
		if len(name) == 0 {
			return "", false
		}
		return fmt.Sprintf("GDB%d", Circ10(at(1))), true

	case Strng:
		if len(name) == 0 {
			return "", false
		}
		return fmt.Sprintf("Str%d", Circ10(at(1))), true

	case Real, Cplx:
		if len(name) == 0 {
			return "", false
		}
		return decodeChars(name[:1]), true

	case List, CList:
		if len(name) == 0 {
			return "", false
		}
		if at(1) < 6 {
			return "L" + strconv.Itoa(at(1)+1), true
		}
		return decodeChars(name[1:]), true

	case Mat:
		if at(0) != matrixMarker || len(name) < 2 {
			return "", false
		}
		return fmt.Sprintf("[%c]", rune('A'+at(1))), true

	case Equ:
		if at(0) != equationMarker || len(name) < 2 {
			return "", false
		}
		return equationName(at(1))
	}

	return "", false
}

// equationName decodes the second byte of an equation name. The high nibble
// selects the graphing mode and the low nibble the index.
func equationName(n int) (string, bool) {
	b := n & 0x0f

	switch n & 0xf0 {
	case 0x10:
		return fmt.Sprintf("Y%d", Circ10(b)), true

	case 0x20:
		// parametric equations come in X/Y pairs
		if b%2 == 0 {
			return fmt.Sprintf("X%dT", (b/2+1)%6), true
		}
		return fmt.Sprintf("Y%dT", (b/2+1)%6), true

	case 0x40:
		return fmt.Sprintf("R%d", (b+1)%6), true

	case 0x80:
		switch b {
		case 0:
			return "Un", true
		case 1:
			return "Vn", true
		case 2:
			return "Wn", true
		}
	}

	return "", false
}
