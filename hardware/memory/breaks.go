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

// BreakKind distinguishes the types of breakpoint. Values can be combined.
type BreakKind int

// List of breakpoint types.
const (
	NormalBreak BreakKind = 1 << iota
	ReadBreak
	WriteBreak
)

func (k BreakKind) String() string {
	switch k {
	case NormalBreak:
		return "exec"
	case ReadBreak:
		return "read"
	case WriteBreak:
		return "write"
	}
	return "mixed"
}

// BreakChecker is implemented by the breakpoint set supplied by the caller
// of SetBreakChecker().
type BreakChecker interface {
	Check(w WideAddress, kind BreakKind) bool
}

// SetBreakChecker sets the breakpoint set consulted by the CheckBreak()
// family of functions. A nil value removes the breakpoint set.
func (as *AddressSpace) SetBreakChecker(bc BreakChecker) {
	as.breaks = bc
}

func (as *AddressSpace) checkBreak(w WideAddress, kind BreakKind) bool {
	if as.breaks == nil {
		return false
	}
	return as.breaks.Check(w, kind)
}

// CheckBreak returns true if there is an execution breakpoint at the address.
func (as *AddressSpace) CheckBreak(w WideAddress) bool {
	return as.checkBreak(w, NormalBreak)
}

// CheckMemReadBreak returns true if there is a read breakpoint on the CPU
// address. For use by CPU implementations.
func (as *AddressSpace) CheckMemReadBreak(addr uint16) bool {
	return as.checkBreak(as.Translate(addr), ReadBreak)
}

// CheckMemWriteBreak returns true if there is a write breakpoint on the CPU
// address. For use by CPU implementations.
func (as *AddressSpace) CheckMemWriteBreak(addr uint16) bool {
	return as.checkBreak(as.Translate(addr), WriteBreak)
}
