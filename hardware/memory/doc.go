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

// Package memory implements the bank switched address space of the
// calculator.
//
// The CPU sees a 16-bit address space divided into four 16KiB windows, or
// banks. Each bank is backed by a page of either flash (ROM) or RAM. The
// mapping is changed by the operating system by writing to the memory
// mapping ports, which in the emulator is done with ChangePage().
//
// A WideAddress identifies a physical location independently of the current
// bank mapping. The Translate() function creates a WideAddress from a CPU
// address, using the current mapping.
//
// Physical memory accesses return errors for out of range addresses. The
// package never panics on bad addresses.
package memory
