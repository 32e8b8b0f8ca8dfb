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

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/logger"
)

// Memory is the view of memory required to read the VAT. Addresses are CPU
// addresses and are translated through the current bank mapping.
type Memory interface {
	Read(addr uint16) (uint8, error)
}

// MaxSymbols is the maximum number of symbols returned by a scan.
const MaxSymbols = 2048

// the locations of the three pointers that describe the VAT.
type pointers struct {
	// pTemp. the lowest address of the table
	end uint16

	// progPtr. the boundary between the variables and the programs
	prog uint16

	// the top of the table. this is a fixed address and not a pointer
	top uint16
}

var standardPointers = pointers{end: 0x982e, prog: 0x9830, top: 0xfe66}
var colorPointers = pointers{end: 0x9e0f, prog: 0x9e11, top: 0xfd9e}

const (
	// the end pointer can never be lower than this
	minEnd = 0x9d95

	// the scan stops if it reaches this address
	lowGuard = 0xc000
)

// Symbol is a single entry in the VAT.
type Symbol struct {
	TypeID  uint8
	TypeID2 uint8
	Version uint8
	Address uint16
	Page    uint8
	Length  uint16

	// Name is the name as stored in memory. trailing NUL bytes of short
	// names are not included
	Name []uint8

	// DisplayName is the result of DisplayName() for this symbol
	DisplayName string
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s (%s) %02x:%04x", s.DisplayName, TypeName(s.TypeID), s.Page, s.Address)
}

// Ref returns a reference to the value of the symbol.
func (s Symbol) Ref() Ref {
	return Ref{Type: s.TypeID, Address: s.Address}
}

// Table is the result of a VAT scan.
type Table struct {
	Model   model.Model
	Symbols []Symbol

	// ProgramsIndex is the index of the first symbol in the program region
	// of the table. if it is equal to len(Symbols) then there are no
	// programs
	ProgramsIndex int
}

// Scan the VAT of the supplied memory. An error is returned if the pointers
// describing the table fail the integrity checks, in which case no symbols
// are returned.
func Scan(mem Memory, m model.Model) (*Table, error) {
	t := &Table{
		Symbols: make([]Symbol, 0, MaxSymbols),
	}
	if err := t.Scan(mem, m); err != nil {
		return nil, err
	}
	return t, nil
}

// Scan the VAT into an existing table. The table's symbols are replaced.
func (t *Table) Scan(mem Memory, m model.Model) error {
	t.Model = m
	t.Symbols = t.Symbols[:0]
	t.ProgramsIndex = 0

	if !m.HasVAT() {
		logger.Logf(logger.Allow, "vat", "%s does not have a VAT", m)
		return curated.Errorf(UnsupportedVAT, m)
	}

	ptrs := standardPointers
	if m.IsColor() {
		ptrs = colorPointers
	}

	r := reader{mem: mem}
	end := int(r.read16(ptrs.end))
	prog := int(r.read16(ptrs.prog))
	if r.err != nil {
		return curated.Errorf(ReadError, r.err)
	}

	stp := int(ptrs.top)

	if stp < end || stp < prog {
		logger.Logf(logger.Allow, "vat", "top %#04x is below end %#04x or prog %#04x", stp, end, prog)
		return curated.Errorf(IntegrityError, "top below boundaries")
	}
	if end > prog || end < minEnd {
		logger.Logf(logger.Allow, "vat", "end %#04x is above prog %#04x or below %#04x", end, prog, minEnd)
		return curated.Errorf(IntegrityError, "end out of range")
	}

	inPrograms := false

	for stp > end && stp > lowGuard && len(t.Symbols) < MaxSymbols {
		var sym Symbol

		sym.TypeID = r.read(stp) & typeMask
		stp--
		sym.TypeID2 = r.read(stp)
		stp--
		sym.Version = r.read(stp)
		stp--
		sym.Address = uint16(r.read(stp))
		stp--
		sym.Address |= uint16(r.read(stp)) << 8
		stp--
		sym.Page = r.read(stp)
		stp--
		sym.Length = uint16(r.read(int(sym.Address-1))) | uint16(r.read(int(sym.Address)))<<8

		if stp > prog {
			var n [3]uint8
			for i := range n {
				n[i] = r.read(stp)
				stp--
			}
			sym.Name = trimName(n[:])
		} else {
			if !inPrograms {
				inPrograms = true
				t.ProgramsIndex = len(t.Symbols)
			}
			l := int(r.read(stp))
			stp--
			sym.Name = make([]uint8, l)
			for i := 0; i < l; i++ {
				sym.Name[i] = r.read(stp)
				stp--
			}
		}

		if r.err != nil {
			t.Symbols = t.Symbols[:0]
			return curated.Errorf(ReadError, r.err)
		}

		// entries without a display name have been consumed but are not
		// part of the table
		name, ok := DisplayName(m, sym.TypeID, sym.Name)
		if !ok {
			continue
		}
		sym.DisplayName = name

		t.Symbols = append(t.Symbols, sym)
	}

	if !inPrograms {
		t.ProgramsIndex = len(t.Symbols)
	}

	return nil
}

// Find returns the first symbol with the raw name.
func (t *Table) Find(name []uint8) (Symbol, bool) {
	for _, s := range t.Symbols {
		if string(s.Name) == string(name) {
			return s, true
		}
	}
	return Symbol{}, false
}

// trimName removes the NUL terminator and anything following it.
func trimName(n []uint8) []uint8 {
	for i, b := range n {
		if b == 0x00 {
			return n[:i:i]
		}
	}
	return n
}

// reader notes the first error and returns zero for all subsequent reads.
type reader struct {
	mem Memory
	err error
}

func (r *reader) read(addr int) uint8 {
	if r.err != nil {
		return 0
	}
	var v uint8
	v, r.err = r.mem.Read(uint16(addr))
	return v
}

// read16 reads a little-endian word.
func (r *reader) read16(addr uint16) uint16 {
	lo := r.read(int(addr))
	hi := r.read(int(addr + 1))
	return uint16(lo) | uint16(hi)<<8
}
