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

// Package cpu defines the interface between the run loop and a Z80 CPU
// implementation. The instruction decoder itself is not part of this module.
// Any type that implements the Stepper interface can be attached to the
// hardware.Calc type with a Factory function.
//
// The CPU accesses memory through the Memory interface. The
// memory.AddressSpace type implements this interface and handles bank
// switching transparently.
package cpu
