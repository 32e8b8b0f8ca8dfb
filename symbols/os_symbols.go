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

package symbols

import (
	"github.com/jetsetilly/gopher83/hardware/memory"
)

// RAM locations used by the TI-83 Plus family operating system.
var osSymbols = []struct {
	name string
	addr uint16
}{
	{"kbdScanCode", 0x843f},
	{"curRow", 0x844b},
	{"curCol", 0x844c},
	{"OP1", 0x8478},
	{"OP2", 0x8483},
	{"OP3", 0x848e},
	{"OP4", 0x8499},
	{"OP5", 0x84a4},
	{"OP6", 0x84af},
	{"textShadow", 0x8508},
	{"saveSScreen", 0x86ec},
	{"penCol", 0x86d7},
	{"penRow", 0x86d8},
	{"flags", 0x89f0},
	{"plotSScreen", 0x9340},
	{"cmdShadow", 0x966e},
	{"pTemp", 0x982e},
	{"progPtr", 0x9830},
	{"appBackUpScreen", 0x9872},
	{"symTable", 0xfe66},
}

// osAddress returns the wide address for a RAM location with the bank
// mapping used by the OS. RAM page 1 is in bank two and RAM page 0 is in bank
// three.
func osAddress(addr uint16) memory.WideAddress {
	if memory.BankOf(addr) == 3 {
		return memory.NewWideAddress(0, int(addr), true)
	}
	return memory.NewWideAddress(1, int(addr), true)
}
