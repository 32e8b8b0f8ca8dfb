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

package memory

import "fmt"

// PageSize is the size of a flash or RAM page and of a bank window.
const PageSize = 0x4000

// NumBanks is the number of bank windows in the CPU address space.
const NumBanks = 4

// BankOf returns the bank window that a CPU address falls within.
func BankOf(addr uint16) int {
	return int(addr >> 14)
}

// BaseOf returns the offset of a CPU address within its bank window.
func BaseOf(addr uint16) uint16 {
	return addr & (PageSize - 1)
}

// WideAddress is a page qualified address. The Addr field is the full CPU
// address at which the location was seen. Only the bank base (see BaseOf())
// is used when indexing physical memory.
type WideAddress struct {
	Page  uint8
	Addr  uint16
	IsRAM bool
}

// NewWideAddress masks the page and address to their bit widths.
func NewWideAddress(page int, addr int, isRAM bool) WideAddress {
	return WideAddress{
		Page:  uint8(page & 0xff),
		Addr:  uint16(addr & 0xffff),
		IsRAM: isRAM,
	}
}

// Base returns the page relative offset of the address.
func (w WideAddress) Base() uint16 {
	return BaseOf(w.Addr)
}

// SameBank returns true if both addresses refer to the same physical
// location, regardless of the bank window they were seen through.
func (w WideAddress) SameBank(o WideAddress) bool {
	return w.IsRAM == o.IsRAM && w.Page == o.Page && w.Base() == o.Base()
}

func (w WideAddress) String() string {
	if w.IsRAM {
		return fmt.Sprintf("RAM %02x:%04x", w.Page, w.Addr)
	}
	return fmt.Sprintf("ROM %02x:%04x", w.Page, w.Addr)
}

// Addr32ToWide converts a linear physical address to a WideAddress. The
// resulting address is page relative.
func Addr32ToWide(addr uint32, isRAM bool) WideAddress {
	return NewWideAddress(int(addr/PageSize), int(addr%PageSize), isRAM)
}
