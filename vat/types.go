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

// Object types as they appear in the low five bits of the first byte of a VAT
// entry.
const (
	Real     uint8 = 0x00
	List     uint8 = 0x01
	Mat      uint8 = 0x02
	Equ      uint8 = 0x03
	Strng    uint8 = 0x04
	Prog     uint8 = 0x05
	ProtProg uint8 = 0x06
	Pict     uint8 = 0x07
	GDB      uint8 = 0x08
	Cplx     uint8 = 0x0c
	CList    uint8 = 0x0d
	App      uint8 = 0x14
	AppVar   uint8 = 0x15
	TempProg uint8 = 0x16
	Group    uint8 = 0x17
)

// typeMask selects the significant bits of the type byte.
const typeMask = 0x1f

// TypeName returns a short description of the object type.
func TypeName(typeID uint8) string {
	switch typeID {
	case Real:
		return "real"
	case List:
		return "list"
	case Mat:
		return "matrix"
	case Equ:
		return "equation"
	case Strng:
		return "string"
	case Prog:
		return "program"
	case ProtProg:
		return "protected program"
	case Pict:
		return "picture"
	case GDB:
		return "graph database"
	case Cplx:
		return "complex"
	case CList:
		return "complex list"
	case App:
		return "application"
	case AppVar:
		return "appvar"
	case TempProg:
		return "temporary program"
	case Group:
		return "group"
	}
	return "unknown"
}

// sizes of numbers in memory.
const (
	realSize    = 9
	complexSize = 2 * realSize
)
