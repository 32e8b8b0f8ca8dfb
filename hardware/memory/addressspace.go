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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/logger"
)

// Bank is the mapping of one bank window.
type Bank struct {
	Page     uint8
	IsRAM    bool
	ReadOnly bool
}

func (b Bank) String() string {
	s := strings.Builder{}
	if b.IsRAM {
		s.WriteString(fmt.Sprintf("RAM %02x", b.Page))
	} else {
		s.WriteString(fmt.Sprintf("ROM %02x", b.Page))
	}
	if b.ReadOnly {
		s.WriteString(" (ro)")
	}
	return s.String()
}

// the start of the area at the top of bank 3 that can be remapped to RAM
// page zero by port 0x27
const port27RemapFloor = 0xfb64

// the size of each step of the port 0x27 and port 0x28 remaps
const remapStep = 64

// AddressSpace is the bank switched memory of the calculator.
type AddressSpace struct {
	Model model.Model

	Flash *Memory
	RAM   *Memory

	normal  [NumBanks]Bank
	bootmap [NumBanks]Bank

	// bootmapped is true if the alternative bank arrangement is in use
	bootmapped bool

	// number of 64 byte blocks remapped by ports 0x27 and 0x28. when port
	// 0x27 is nonzero, the top of bank 3 is backed by RAM page zero. when
	// port 0x28 is nonzero, the bottom of bank 2 is backed by RAM page one
	Port27RemapCount int
	Port28RemapCount int

	// page of flash mapped to bank 0 at power-on
	bootPage uint8

	breaks BreakChecker
}

func (as *AddressSpace) banks() *[NumBanks]Bank {
	if as.bootmapped {
		return &as.bootmap
	}
	return &as.normal
}

// Bank returns the current mapping of the bank window.
func (as *AddressSpace) Bank(bank int) Bank {
	if bank < 0 || bank >= NumBanks {
		return Bank{}
	}
	return as.banks()[bank]
}

// Banks returns a copy of the current mapping of all bank windows.
func (as *AddressSpace) Banks() [NumBanks]Bank {
	return *as.banks()
}

// ChangePage maps a page of flash or RAM into a bank window. The last page of
// flash is always mapped read-only.
func (as *AddressSpace) ChangePage(bank int, page uint8, isRAM bool) error {
	if bank < 0 || bank >= NumBanks {
		return curated.Errorf(BankError, fmt.Sprintf("bank %d does not exist", bank))
	}

	mem := as.Flash
	if isRAM {
		mem = as.RAM
	}
	if int(page) >= mem.Pages() {
		return curated.Errorf(BankError, fmt.Sprintf("page %#02x does not exist", page))
	}

	as.normal[bank] = Bank{
		Page:     page,
		IsRAM:    isRAM,
		ReadOnly: !isRAM && int(page) == as.Flash.Pages()-1,
	}

	if as.bootmapped {
		as.UpdateBootmapPages()
	}

	return nil
}

// UpdateBootmapPages derives the bootmap bank arrangement from the normal
// arrangement. In the bootmap arrangement, bank 1 holds the even page of the
// page mapped at bank 1, bank 2 holds the odd page and bank 3 holds the page
// normally mapped at bank 2.
func (as *AddressSpace) UpdateBootmapPages() {
	as.bootmap[0] = as.normal[0]

	as.bootmap[1] = as.normal[1]
	as.bootmap[1].Page &^= 0x01

	as.bootmap[2] = as.normal[1]
	as.bootmap[2].Page |= 0x01

	as.bootmap[3] = as.normal[2]

	mem := as.Flash
	if as.bootmap[2].IsRAM {
		mem = as.RAM
	}
	if int(as.bootmap[2].Page) >= mem.Pages() {
		as.bootmap[2].Page = as.bootmap[1].Page
	}
}

// SetBootmap switches between the normal and the bootmap bank arrangements.
func (as *AddressSpace) SetBootmap(on bool) {
	if on == as.bootmapped {
		return
	}
	as.bootmapped = on
	if on {
		as.UpdateBootmapPages()
	}
	logger.Logf(logger.Allow, "memory", "bootmap %v", on)
}

// Bootmapped returns true if the bootmap arrangement is in use.
func (as *AddressSpace) Bootmapped() bool {
	return as.bootmapped
}

// Translate a CPU address to a WideAddress using the current bank mapping.
func (as *AddressSpace) Translate(addr uint16) WideAddress {
	b := as.banks()[BankOf(addr)]
	return WideAddress{Page: b.Page, Addr: addr, IsRAM: b.IsRAM}
}

// physical returns the memory and the index that back the CPU address.
func (as *AddressSpace) physical(addr uint16) (*Memory, int) {
	bank := BankOf(addr)
	base := int(BaseOf(addr))

	// the remaps only apply to the normal bank arrangement
	if !as.bootmapped && as.Port27RemapCount > 0 && bank == 3 &&
		int(addr) >= 0x10000-remapStep*as.Port27RemapCount && addr >= port27RemapFloor {
		return as.RAM, base
	}

	if !as.bootmapped && as.Port28RemapCount > 0 && bank == 2 && base < remapStep*as.Port28RemapCount {
		return as.RAM, PageSize + base
	}

	b := as.banks()[bank]
	if b.IsRAM {
		if as.RAM.Version == 2 && b.Page > 2 {
			return as.RAM, 2*PageSize + base
		}
		return as.RAM, int(b.Page)*PageSize + base
	}

	return as.Flash, int(b.Page)*PageSize + base
}

// Read a byte from the CPU address.
func (as *AddressSpace) Read(addr uint16) (uint8, error) {
	mem, idx := as.physical(addr)
	return mem.Get(idx)
}

// Read16 reads a little-endian word from the CPU address.
func (as *AddressSpace) Read16(addr uint16) (uint16, error) {
	lo, err := as.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := as.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Write a byte to the CPU address. Writes to flash are ignored. Programming
// flash requires the command sequences implemented by a flash device model.
func (as *AddressSpace) Write(addr uint16, data uint8) error {
	mem, idx := as.physical(addr)
	if !mem.IsRAM() {
		return nil
	}
	return mem.Set(idx, data)
}

// ReadWide reads a byte from the physical location identified by the
// WideAddress, regardless of the current bank mapping.
func (as *AddressSpace) ReadWide(w WideAddress) (uint8, error) {
	mem := as.Flash
	if w.IsRAM {
		mem = as.RAM
	}
	return mem.Get(int(w.Page)*PageSize + int(w.Base()))
}

// ReadWide16 reads a little-endian word from the physical location identified
// by the WideAddress. The high byte wraps to the start of the same page.
func (as *AddressSpace) ReadWide16(w WideAddress) (uint16, error) {
	lo, err := as.ReadWide(w)
	if err != nil {
		return 0, err
	}
	w.Addr = (w.Addr &^ (PageSize - 1)) | ((w.Base() + 1) & (PageSize - 1))
	hi, err := as.ReadWide(w)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Summary returns a short description of the current bank mapping.
func (as *AddressSpace) Summary() string {
	s := strings.Builder{}
	for i, b := range as.banks() {
		s.WriteString(fmt.Sprintf("%04x: %s\n", i*PageSize, b))
	}
	if as.bootmapped {
		s.WriteString("bootmapped\n")
	}
	return s.String()
}
