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

// Package debugger contains the tools used to inspect a running calculator.
//
// Breakpoints is a set of execution, memory read and memory write breakpoints
// that can be given to the hardware package with Calc.SetBreakpoints().
// Breakpoints are tied to physical memory and not to CPU addresses, so a
// breakpoint will trigger whichever bank window the location is accessed
// through.
//
// Memviz() writes a graphviz representation of a data structure. It is
// intended for inspecting the emulation state during development.
package debugger
