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

// Package vat reads the variable allocation table (VAT) of a running
// calculator. The VAT is a table that grows downwards in RAM, listing every
// named variable along with its type and the location of its data.
//
// Scan() walks the table and returns the displayable symbols. DisplayName()
// turns the raw name of a symbol into the name the calculator shows the user.
// Decode() renders the value of a symbol as a string.
//
// Only models that have a VAT (the TI-83 Plus and later) can be scanned.
//
// Reading the VAT assumes that the emulation is not running. Scan() and
// Decode() must not be called while the CPU is being stepped.
package vat
