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

import "github.com/jetsetilly/gopher83/curated"

// Memory is a contiguous block of physical flash or RAM, divided into pages.
type Memory struct {
	data  []uint8
	pages int
	isRAM bool

	// revision of the memory chip. affects how some pages are mirrored
	Version int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(pages int, isRAM bool) *Memory {
	return &Memory{
		data:  make([]uint8, pages*PageSize),
		pages: pages,
		isRAM: isRAM,
	}
}

// Pages returns the number of pages.
func (m *Memory) Pages() int {
	return m.pages
}

// Size returns the size of the memory in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// IsRAM returns true if the memory is RAM and false if it is flash.
func (m *Memory) IsRAM() bool {
	return m.isRAM
}

// Get returns the value at the index.
func (m *Memory) Get(idx int) (uint8, error) {
	if idx < 0 || idx >= len(m.data) {
		return 0, curated.Errorf(AddressError, m.outOfRange(idx))
	}
	return m.data[idx], nil
}

// Set the value at the index.
func (m *Memory) Set(idx int, v uint8) error {
	if idx < 0 || idx >= len(m.data) {
		return curated.Errorf(AddressError, m.outOfRange(idx))
	}
	m.data[idx] = v
	return nil
}

func (m *Memory) outOfRange(idx int) error {
	if m.isRAM {
		return curated.Errorf("RAM index %#x out of range", idx)
	}
	return curated.Errorf("flash index %#x out of range", idx)
}

// Load copies data into memory, starting at index zero. Data beyond the end of
// memory is ignored. Returns the number of bytes copied.
func (m *Memory) Load(data []uint8) int {
	return copy(m.data, data)
}

// Clear sets every location to zero.
func (m *Memory) Clear() {
	clear(m.data)
}
