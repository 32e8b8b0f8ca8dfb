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

package vat_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/test"
	"github.com/jetsetilly/gopher83/vat"
)

func TestCirc10(t *testing.T) {
	test.ExpectEquality(t, vat.Circ10(0), 1)
	test.ExpectEquality(t, vat.Circ10(3), 4)
	test.ExpectEquality(t, vat.Circ10(8), 9)
	test.ExpectEquality(t, vat.Circ10(9), 0)
	test.ExpectEquality(t, vat.Circ10(10), 10)
	test.ExpectEquality(t, vat.Circ10(12), 12)
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		typeID uint8
		name   []uint8
		exp    string
		ok     bool
	}{
		{vat.Real, []uint8{'X'}, "X", true},
		{vat.Cplx, []uint8{'Z', 0x01}, "Z", true},
		{vat.Real, []uint8{}, "", false},
		{vat.Real, []uint8{vat.AnsName}, "Ans", true},
		{vat.List, []uint8{vat.AnsName}, "Ans", true},
		{vat.Prog, []uint8("PRGM"), "PRGM", true},
		{vat.ProtProg, []uint8("SECRET"), "SECRET", true},
		{vat.AppVar, []uint8("DATA"), "DATA", true},
		{vat.Group, []uint8("GRP"), "GRP", true},
		{vat.Pict, []uint8{0x60}, "Pic1", true},
		{vat.Pict, []uint8{0x60, 0x09}, "Pic0", true},
		{vat.GDB, []uint8{0x61, 0x02}, "GDB3", true},
		{vat.Strng, []uint8{0xaa, 0x08}, "Str9", true},
		{vat.Strng, []uint8{}, "", false},
		{vat.List, []uint8{0x5d}, "L1", true},
		{vat.List, []uint8{0x5d, 0x05}, "L6", true},
		{vat.CList, []uint8{0x5d, 'A', 'B'}, "AB", true},
		{vat.List, []uint8{}, "", false},
		{vat.Mat, []uint8{0x5c, 0x00}, "[A]", true},
		{vat.Mat, []uint8{0x5c, 0x09}, "[J]", true},
		{vat.Mat, []uint8{0x5d, 0x00}, "", false},
		{vat.Mat, []uint8{0x5c}, "", false},
		{vat.Equ, []uint8{0x5e, 0x10}, "Y1", true},
		{vat.Equ, []uint8{0x5e, 0x19}, "Y0", true},
		{vat.Equ, []uint8{0x5e, 0x20}, "X1T", true},
		{vat.Equ, []uint8{0x5e, 0x21}, "Y1T", true},
		{vat.Equ, []uint8{0x5e, 0x2a}, "X0T", true},
		{vat.Equ, []uint8{0x5e, 0x40}, "R1", true},
		{vat.Equ, []uint8{0x5e, 0x45}, "R0", true},
		{vat.Equ, []uint8{0x5e, 0x80}, "Un", true},
		{vat.Equ, []uint8{0x5e, 0x81}, "Vn", true},
		{vat.Equ, []uint8{0x5e, 0x82}, "Wn", true},
		{vat.Equ, []uint8{0x5e, 0x83}, "", false},
		{vat.Equ, []uint8{0x5e, 0x30}, "", false},
		{vat.Equ, []uint8{0x5f, 0x10}, "", false},
		{vat.App, []uint8("APP"), "", false},
	}

	for _, c := range cases {
		n, ok := vat.DisplayName(model.TI84P, c.typeID, c.name)
		test.ExpectEquality(t, ok, c.ok, c.name)
		test.ExpectEquality(t, n, c.exp, c.name)
	}
}

func TestDisplayName86(t *testing.T) {
	// names are not interpreted for the TI-86
	n, ok := vat.DisplayName(model.TI86, vat.Mat, []uint8("MAT"))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "MAT")

	n, ok = vat.DisplayName(model.TI86, vat.Real, []uint8{vat.AnsName})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "Ans")
}

func decodeReal(t *testing.T, flags uint8, exp int, digits string) string {
	t.Helper()
	var mem flat
	writeReal(&mem, 0x9000, flags, exp, digits)
	s, err := vat.Decode(&mem, vat.Ref{Type: vat.Real, Address: 0x9000})
	test.DemandSuccess(t, err)
	return s
}

func TestDecodeReal(t *testing.T) {
	test.ExpectEquality(t, decodeReal(t, 0x00, 0, "314"), "3.14")
	test.ExpectEquality(t, decodeReal(t, 0x00, 2, "314"), "314")
	test.ExpectEquality(t, decodeReal(t, 0x00, 4, "314"), "31400")
	test.ExpectEquality(t, decodeReal(t, 0x00, 1, "314"), "31.4")
	test.ExpectEquality(t, decodeReal(t, 0x00, -2, "314"), "0.0314")
	test.ExpectEquality(t, decodeReal(t, 0x80, 0, "5"), "-5")
	test.ExpectEquality(t, decodeReal(t, 0x00, 0, ""), "0")
	test.ExpectEquality(t, decodeReal(t, 0x00, 14, "1"), "100000000000000")

	// scientific form
	test.ExpectEquality(t, decodeReal(t, 0x00, 16, "3"), "3*10^16")
	test.ExpectEquality(t, decodeReal(t, 0x00, 16, "314"), "3.14*10^16")
	test.ExpectEquality(t, decodeReal(t, 0x80, -20, "25"), "-2.5*10^-20")

	// a stored exponent of zero is 128 and not -128
	test.ExpectEquality(t, decodeReal(t, 0x00, -128, "1"), "1*10^128")
}

func TestDecodeComplex(t *testing.T) {
	var mem flat
	writeReal(&mem, 0x9000, 0x0c, 0, "1")
	writeReal(&mem, 0x9009, 0x0c, 0, "2")
	s, err := vat.Decode(&mem, vat.Ref{Type: vat.Cplx, Address: 0x9000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "1+2i")

	writeReal(&mem, 0x9009, 0x8c, 0, "25")
	s, _ = vat.Decode(&mem, vat.Ref{Type: vat.Cplx, Address: 0x9000})
	test.ExpectEquality(t, s, "1-2.5i")
}

func TestDecodeList(t *testing.T) {
	var mem flat
	write16(&mem, 0x9000, 2)
	writeReal(&mem, 0x9002, 0x00, 0, "7")
	writeReal(&mem, 0x900b, 0x80, 0, "8")

	s, err := vat.Decode(&mem, vat.Ref{Type: vat.List, Address: 0x9000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "{7,-8}")
	test.ExpectEquality(t, strings.Count(s, ","), 1)

	// complex list elements are eighteen bytes
	write16(&mem, 0xa000, 2)
	writeReal(&mem, 0xa002, 0x0c, 0, "1")
	writeReal(&mem, 0xa00b, 0x0c, 0, "2")
	writeReal(&mem, 0xa014, 0x0c, 0, "3")
	writeReal(&mem, 0xa01d, 0x0c, 0, "4")

	s, err = vat.Decode(&mem, vat.Ref{Type: vat.CList, Address: 0xa000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "{1+2i,3+4i}")

	// empty list
	s, _ = vat.Decode(&mem, vat.Ref{Type: vat.List, Address: 0xb000})
	test.ExpectEquality(t, s, "{}")
}

func TestDecodeMatrix(t *testing.T) {
	var mem flat
	mem.Write(0x9000, 3)
	mem.Write(0x9001, 2)
	for i, d := range []string{"1", "2", "3", "4", "5", "6"} {
		writeReal(&mem, 0x9002+uint16(i*9), 0x00, 0, d)
	}

	s, err := vat.Decode(&mem, vat.Ref{Type: vat.Mat, Address: 0x9000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "[[1,2,3]\n [4,5,6]]")
}

func TestDecodeString(t *testing.T) {
	var mem flat
	write16(&mem, 0x9000, 3)
	mem.Write(0x9002, 'A')
	mem.Write(0x9003, ' ')
	mem.Write(0x9004, 'b')

	s, err := vat.Decode(&mem, vat.Ref{Type: vat.Strng, Address: 0x9000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "A b")
}

func TestDecodeUnsupported(t *testing.T) {
	var mem flat
	for _, typ := range []uint8{vat.Equ, vat.Prog, vat.Pict, vat.App, 0x1f} {
		s, err := vat.Decode(&mem, vat.Ref{Type: typ})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, vat.Unsupported)
	}
}
