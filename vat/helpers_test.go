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
	"strconv"
)

// flat is a 64k address space with no banking.
type flat [0x10000]uint8

func (m *flat) Read(addr uint16) (uint8, error) {
	return m[addr], nil
}

func (m *flat) Write(addr uint16, data uint8) error {
	m[addr] = data
	return nil
}

type writer interface {
	Write(addr uint16, data uint8) error
}

// image builds a VAT in memory. entries are added downwards from the top of
// the table.
type image struct {
	mem writer
	stp uint16
}

func newImage(mem writer, top uint16) *image {
	return &image{mem: mem, stp: top}
}

func (im *image) push(b uint8) {
	im.mem.Write(im.stp, b)
	im.stp--
}

func (im *image) header(typeID uint8, addr uint16) {
	im.push(typeID)
	im.push(0x00)
	im.push(0x00)
	im.push(uint8(addr))
	im.push(uint8(addr >> 8))
	im.push(0x00)
}

// fixed adds an entry with a three byte name.
func (im *image) fixed(typeID uint8, addr uint16, name ...uint8) {
	im.header(typeID, addr)
	var n [3]uint8
	copy(n[:], name)
	for _, b := range n {
		im.push(b)
	}
}

// prefixed adds an entry with a length prefixed name.
func (im *image) prefixed(typeID uint8, addr uint16, name string) {
	im.header(typeID, addr)
	im.push(uint8(len(name)))
	for _, c := range []byte(name) {
		im.push(c)
	}
}

func write16(mem writer, addr uint16, v uint16) {
	mem.Write(addr, uint8(v))
	mem.Write(addr+1, uint8(v>>8))
}

// pointers sets the end and prog pointers for the standard models.
func pointers(mem writer, end uint16, prog uint16) {
	write16(mem, 0x982e, end)
	write16(mem, 0x9830, prog)
}

// writeReal writes a nine byte number. digits is the string of decimal
// digits and exp is the unbiased exponent.
func writeReal(mem writer, addr uint16, flags uint8, exp int, digits string) {
	mem.Write(addr, flags)
	mem.Write(addr+1, uint8(exp+0x80))

	var d [14]uint8
	for i, c := range digits {
		v, _ := strconv.Atoi(string(c))
		d[i] = uint8(v)
	}
	for i := 0; i < len(d); i += 2 {
		mem.Write(addr+2+uint16(i/2), d[i]<<4|d[i+1])
	}
}
