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

// Package symbols keeps track of address labels. Labels are attached to wide
// addresses (see the hardware/memory package) because the same CPU address
// can refer to different physical memory depending on the bank mapping.
//
// NewLabels() creates a table with the canonical OS RAM labels for the TI-83
// Plus family. Labels from an assembler label file can be added with the
// ReadFile() function.
package symbols
